package controllers

import (
	"errors"
	"log"
	"net/http"

	"gin-marketplace/constants"
	"gin-marketplace/dto"
	"gin-marketplace/services"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Profile(ctx *gin.Context)
}

type AuthController struct {
	authService services.IAuthService
	itemService services.IItemService
	cartService services.ICartService
}

func NewAuthController(authService services.IAuthService, itemService services.IItemService, cartService services.ICartService) IAuthController {
	return &AuthController{
		authService: authService,
		itemService: itemService,
		cartService: cartService,
	}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}

	user, token, err := c.authService.Register(input.Email, input.Password, input.Role)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrMsgDuplicateEmail})
			return
		}
		if errors.Is(err, services.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
			return
		}
		log.Printf("Register error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: user})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}

	user, token, err := c.authService.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrMsgInvalidCredentials})
			return
		}
		log.Printf("Login error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: user})
}

func (c *AuthController) Profile(ctx *gin.Context) {
	identity, exists := ctx.Get("identity")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrMsgUnauthenticated})
		return
	}
	userID := identity.(*services.Identity).UserID

	user, err := c.authService.GetUser(userID)
	if err != nil {
		// トークンは有効でもユーザーが消えている場合は認証エラー扱い
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrMsgUnauthenticated})
		return
	}

	items, err := c.itemService.FindBySeller(userID)
	if err != nil {
		log.Printf("Profile items error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	cart, err := c.cartService.FindItems(userID)
	if err != nil {
		log.Printf("Profile cart error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{User: user, Items: *items, Cart: *cart})
}
