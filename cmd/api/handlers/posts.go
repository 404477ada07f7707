package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogger-platform/cmd/api/auth"
	apidto "blogger-platform/cmd/api/dto"
	"blogger-platform/models"
)

// ListPostsHandler godoc
// @Summary      List posts
// @Description  List posts with reaction data for the caller (anonymous without a valid token)
// @Tags         posts
// @Param        searchNameTerm  query  string  false  "Title contains (case-insensitive)"
// @Param        sortBy          query  string  false  "Sort field" default(createdAt)
// @Param        sortDirection   query  string  false  "asc | desc" default(desc)
// @Param        pageNumber      query  int     false  "Page number (1-based)"
// @Param        pageSize        query  int     false  "Page size"
// @Produce      json
// @Success      200  {object}  object
// @Router       /posts [get]
func ListPostsHandler(svc PostsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.GetPosts(c.Request.Context(), parseQueryParams(c), "", auth.OptionalBearerToken(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// ListBlogPostsHandler godoc
// @Summary      List posts of a blog
// @Tags         blogs
// @Param        blogId  path  string  true  "Blog id"
// @Produce      json
// @Success      200  {object}  object
// @Failure      404  {object}  apidto.ErrorResponseDTO
// @Router       /blogs/{blogId}/posts [get]
func ListBlogPostsHandler(svc PostsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.GetPosts(c.Request.Context(), parseQueryParams(c), c.Param("blogId"), auth.OptionalBearerToken(c))
		if err != nil {
			respondError(c, err)
			return
		}
		if page == nil {
			respondNotFound(c)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetPostHandler godoc
// @Summary      Get post by id
// @Tags         posts
// @Param        postId  path  string  true  "Post id"
// @Produce      json
// @Success      200  {object}  object
// @Failure      404  {object}  apidto.ErrorResponseDTO
// @Router       /posts/{postId} [get]
func GetPostHandler(svc PostsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetPostByID(c.Request.Context(), c.Param("postId"), auth.OptionalBearerToken(c))
		if err != nil {
			respondError(c, err)
			return
		}
		if post == nil {
			respondNotFound(c)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// UpdatePostLikeStatusHandler godoc
// @Summary      Like, dislike or reset a post
// @Tags         posts
// @Param        postId  path  string  true  "Post id"
// @Param        body    body  apidto.LikeStatusRequestDTO  true  "Reaction"
// @Success      204
// @Failure      400  {object}  apidto.ErrorResponseDTO
// @Failure      404  {object}  apidto.ErrorResponseDTO
// @Router       /posts/{postId}/like-status [put]
func UpdatePostLikeStatusHandler(svc PostsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req apidto.LikeStatusRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		status, ok := models.ParseLikeStatus(req.LikeStatus)
		if !ok {
			c.JSON(http.StatusBadRequest, apidto.ErrorResponseDTO{Error: "invalid likeStatus"})
			return
		}

		ctx := c.Request.Context()
		postID := c.Param("postId")
		exists, err := svc.PostExists(ctx, postID)
		if err != nil {
			respondError(c, err)
			return
		}
		if !exists {
			respondNotFound(c)
			return
		}

		updated, err := svc.UpdateLikesInfo(ctx, auth.UserID(c), postID, status)
		respondMutation(c, updated, err)
	}
}
