package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListBlogsHandler godoc
// @Summary      List blogs
// @Description  Banned blogs are never listed
// @Tags         blogs
// @Param        searchNameTerm  query  string  false  "Name contains (case-insensitive)"
// @Param        pageNumber      query  int     false  "Page number (1-based)"
// @Param        pageSize        query  int     false  "Page size"
// @Produce      json
// @Success      200  {object}  object
// @Router       /blogs [get]
func ListBlogsHandler(svc BlogsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.List(c.Request.Context(), parseQueryParams(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetBlogHandler godoc
// @Summary      Get blog by id
// @Tags         blogs
// @Param        blogId  path  string  true  "Blog id"
// @Produce      json
// @Success      200  {object}  object
// @Failure      404  {object}  apidto.ErrorResponseDTO
// @Router       /blogs/{blogId} [get]
func GetBlogHandler(svc BlogsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.GetByID(c.Request.Context(), c.Param("blogId"))
		if err != nil {
			respondError(c, err)
			return
		}
		if blog == nil {
			respondNotFound(c)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}
