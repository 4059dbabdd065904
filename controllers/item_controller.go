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

type IItemController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ItemController struct {
	service services.IItemService
}

func NewItemController(service services.IItemService) IItemController {
	return &ItemController{service: service}
}

func (c *ItemController) FindAll(ctx *gin.Context) {
	items, err := c.service.FindAll()
	if err != nil {
		log.Printf("Find items error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (c *ItemController) Create(ctx *gin.Context) {
	identity, exists := ctx.Get("identity")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrMsgUnauthenticated})
		return
	}
	sellerID := identity.(*services.Identity).UserID

	var input dto.CreateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}

	newItem, err := c.service.Create(input, sellerID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
			return
		}
		log.Printf("Create item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateItemResponse{ID: newItem.ID})
}

func (c *ItemController) Update(ctx *gin.Context) {
	itemID := ctx.Param("id")

	var input dto.UpdateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMsgInvalidInput})
		return
	}

	if err := c.service.Update(itemID, input); err != nil {
		log.Printf("Update item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

func (c *ItemController) Delete(ctx *gin.Context) {
	itemID := ctx.Param("id")

	if err := c.service.Delete(itemID); err != nil {
		log.Printf("Delete item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
