package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
)

// listBlogs handles GET /api/blog.
func (h *Handler) listBlogs(c *gin.Context) {
	var req dto.BlogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindError(c, err)
		return
	}

	resp, err := h.svc.Blog.List(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getBlogBySlug handles GET /api/blog/slug/:slug. A successful read also
// records a blog_view event, best-effort.
func (h *Handler) getBlogBySlug(c *gin.Context) {
	post, err := h.svc.Blog.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	track := dto.TrackEventRequest{
		Type:   string(domain.EventBlogView),
		Page:   c.Request.URL.Path,
		BlogID: post.ID.Hex(),
	}
	if _, err := h.svc.Analytics.Track(c.Request.Context(), &track, requestMeta(c, "")); err != nil {
		h.log.Warn("Failed to record blog view",
			zap.String("slug", post.Slug),
			zap.Error(err))
	}

	c.JSON(http.StatusOK, post)
}

// likeBlog handles POST /api/blog/:id/like.
func (h *Handler) likeBlog(c *gin.Context) {
	likes, err := h.svc.Blog.Like(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LikeResponse{Likes: likes})
}

// blogCategories handles GET /api/blog/categories.
func (h *Handler) blogCategories(c *gin.Context) {
	categories, err := h.svc.Blog.Categories(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// blogTags handles GET /api/blog/tags.
func (h *Handler) blogTags(c *gin.Context) {
	tags, err := h.svc.Blog.Tags(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// adminListBlogs handles GET /api/blog/admin.
func (h *Handler) adminListBlogs(c *gin.Context) {
	var req dto.AdminListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindError(c, err)
		return
	}

	resp, err := h.svc.Blog.AdminList(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// adminGetBlog handles GET /api/blog/admin/:id.
func (h *Handler) adminGetBlog(c *gin.Context) {
	post, err := h.svc.Blog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// createBlog handles POST /api/blog.
func (h *Handler) createBlog(c *gin.Context) {
	var post domain.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		h.bindError(c, err)
		return
	}

	created, err := h.svc.Blog.Create(c.Request.Context(), &post)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// updateBlog handles PUT /api/blog/:id.
func (h *Handler) updateBlog(c *gin.Context) {
	var post domain.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		h.bindError(c, err)
		return
	}

	updated, err := h.svc.Blog.Update(c.Request.Context(), c.Param("id"), &post)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteBlog handles DELETE /api/blog/:id.
func (h *Handler) deleteBlog(c *gin.Context) {
	if err := h.svc.Blog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Blog post deleted successfully"})
}
