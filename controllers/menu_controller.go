package controllers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"canteen-backend/pkg/resp"
	"canteen-backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service   *services.MenuService
	UploadDir string
}

func NewMenuController(service *services.MenuService, uploadDir string) *MenuController {
	return &MenuController{Service: service, UploadDir: uploadDir}
}

func writeMenuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMenuItemNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidPrice):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /menu?category=&available=
func (mc *MenuController) List(c *gin.Context) {
	category := c.Query("category")

	var available *bool
	if v := c.Query("available"); v != "" {
		b := v == "true"
		available = &b
	}

	items, err := mc.Service.List(category, available)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /menu
func (mc *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Service.Create(&req)
	if err != nil {
		writeMenuError(c, err)
		return
	}
	resp.Created(c, item)
}

// menuItemID parses the :id path param; a non-numeric id is a client
// error, not a lookup for item 0.
func menuItemID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid menu item id: "+c.Param("id"))
		return 0, false
	}
	return uint(id), true
}

// PUT /menu/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, ok := menuItemID(c)
	if !ok {
		return
	}

	var req services.UpdateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Service.Update(id, &req)
	if err != nil {
		writeMenuError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, ok := menuItemID(c)
	if !ok {
		return
	}

	if err := mc.Service.Delete(id); err != nil {
		writeMenuError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}

// POST /menu/:id/image: multipart upload; the stored file is served from
// /uploads and the item points at that URL.
func (mc *MenuController) UploadImage(c *gin.Context) {
	id, ok := menuItemID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		resp.BadRequest(c, "unsupported image type")
		return
	}

	name := fmt.Sprintf("menu-%d-%d%s", id, time.Now().UnixNano(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(mc.UploadDir, name)); err != nil {
		resp.ServerError(c, err)
		return
	}

	item, err := mc.Service.SetImage(id, "/uploads/"+name)
	if err != nil {
		writeMenuError(c, err)
		return
	}
	resp.OK(c, item)
}
