package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResourceHandler serves the create/list/get/update/delete routes of one
// resource kind. R is the request body shared by create and update.
type ResourceHandler[T any, R any] struct {
	svc service.ResourceService[T]
	// build turns a create body into a new document.
	build func(req *R) (*T, error)
	// patch turns an update body into an in-place change.
	patch func(req *R) (func(*T), error)
	// present shapes documents for list and get. Nil sends them as stored.
	present func(ctx context.Context, docs []T) ([]any, error)
}

func (h *ResourceHandler[T, R]) Create(c *gin.Context) {
	var req R
	if err := bindBody(c, &req); err != nil {
		respondError(c, err)
		return
	}
	doc, err := h.build(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), principal(c), doc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ResourceHandler[T, R]) List(c *gin.Context) {
	docs, err := h.svc.List(c.Request.Context(), principal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if h.present == nil {
		c.JSON(http.StatusOK, docs)
		return
	}

	views, err := h.present(c.Request.Context(), docs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *ResourceHandler[T, R]) Get(c *gin.Context) {
	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	doc, err := h.svc.Get(c.Request.Context(), principal(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if h.present == nil {
		c.JSON(http.StatusOK, doc)
		return
	}

	views, err := h.present(c.Request.Context(), []T{*doc})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views[0])
}

func (h *ResourceHandler[T, R]) Update(c *gin.Context) {
	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var req R
	if err = bindBody(c, &req); err != nil {
		respondError(c, err)
		return
	}
	patch, err := h.patch(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), principal(c), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ResourceHandler[T, R]) Delete(c *gin.Context) {
	id, err := service.ParseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err = h.svc.Delete(c.Request.Context(), principal(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.svc.Kind().Name + " removed"})
}

// register mounts the five routes on group. Mutations always go through
// auth; reads only when publicReads is false.
func (h *ResourceHandler[T, R]) register(group *gin.RouterGroup, auth gin.HandlerFunc, publicReads bool) {
	reads := group.Group("")
	if !publicReads {
		reads.Use(auth)
	}
	reads.GET("", h.List)
	reads.GET("/:id", h.Get)

	writes := group.Group("", auth)
	writes.POST("", h.Create)
	writes.PUT("/:id", h.Update)
	writes.DELETE("/:id", h.Delete)
}
