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

type ICartController interface {
	Add(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	Remove(ctx *gin.Context)
}

type CartController struct {
	service services.ICartService
}

func NewCartController(service services.ICartService) ICartController {
	return &CartController{service: service}
}

// カート操作は常に本人のカートだけを対象にするので、認証以上のロールチェックは不要

func (c *CartController) Add(ctx *gin.Context) {
	identity, exists := ctx.Get("identity")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrMsgUnauthenticated})
		return
	}
	userID := identity.(*services.Identity).UserID

	var input dto.AddToCartInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}

	if err := c.service.Add(userID, input.ItemID); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
			return
		}
		log.Printf("Add to cart error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"ok": true})
}

func (c *CartController) FindAll(ctx *gin.Context) {
	identity, exists := ctx.Get("identity")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrMsgUnauthenticated})
		return
	}
	userID := identity.(*services.Identity).UserID

	items, err := c.service.FindItems(userID)
	if err != nil {
		log.Printf("Find cart error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (c *CartController) Remove(ctx *gin.Context) {
	identity, exists := ctx.Get("identity")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrMsgUnauthenticated})
		return
	}
	userID := identity.(*services.Identity).UserID

	if err := c.service.Remove(userID, ctx.Param("itemId")); err != nil {
		log.Printf("Remove from cart error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
