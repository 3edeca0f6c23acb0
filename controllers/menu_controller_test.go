package controllers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"canteen-backend/entity"
	"canteen-backend/repository"
	"canteen-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMenuRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.MenuItem{}))

	mc := NewMenuController(services.NewMenuService(repository.NewMenuRepository(db)), t.TempDir())

	r := gin.New()
	r.PUT("/menu/:id", mc.Update)
	r.DELETE("/menu/:id", mc.Delete)
	r.POST("/menu/:id/image", mc.UploadImage)
	return r, db
}

func TestMenuController_RejectsNonNumericID(t *testing.T) {
	r, _ := newMenuRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/menu/abc"},
		{http.MethodDelete, "/menu/abc"},
		{http.MethodPost, "/menu/abc/image"},
		{http.MethodPut, "/menu/0"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", tc.method, tc.path)
		assert.Contains(t, w.Body.String(), "invalid menu item id", "%s %s", tc.method, tc.path)
	}
}

func TestMenuController_UpdateNumericIDStillWorks(t *testing.T) {
	r, db := newMenuRouter(t)

	item := &entity.MenuItem{Name: "Coffee", Price: 2.99, Category: entity.CategoryBeverages}
	require.NoError(t, db.Create(item).Error)

	req := httptest.NewRequest(http.MethodPut, "/menu/1", strings.NewReader(`{"price":3.49}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got entity.MenuItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, 3.49, got.Price)
}
