package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogger-platform/cmd/api/auth"
	apidto "blogger-platform/cmd/api/dto"
	"blogger-platform/models"
)

// ListPostCommentsHandler godoc
// @Summary      List comments of a post
// @Tags         posts
// @Param        postId  path  string  true  "Post id"
// @Produce      json
// @Success      200  {object}  object
// @Failure      404  {object}  apidto.ErrorResponseDTO
// @Router       /posts/{postId}/comments [get]
func ListPostCommentsHandler(svc CommentsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.ListForPost(c.Request.Context(), parseQueryParams(c), c.Param("postId"), auth.OptionalBearerToken(c))
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

// CreatePostCommentHandler godoc
// @Summary      Comment on a post
// @Tags         posts
// @Param        postId  path  string  true  "Post id"
// @Param        body    body  apidto.CommentRequestDTO  true  "Comment"
// @Success      201  {object}  object
// @Failure      403  {object}  apidto.ErrorResponseDTO
// @Failure      404  {object}  apidto.ErrorResponseDTO
// @Router       /posts/{postId}/comments [post]
func CreatePostCommentHandler(svc CommentsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req apidto.CommentRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		comment, err := svc.Create(c.Request.Context(), c.Param("postId"), auth.UserID(c), req.Content)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, comment)
	}
}

func GetCommentHandler(svc CommentsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		comment, err := svc.GetByID(c.Request.Context(), c.Param("commentId"), auth.OptionalBearerToken(c))
		if err != nil {
			respondError(c, err)
			return
		}
		if comment == nil {
			respondNotFound(c)
			return
		}
		c.JSON(http.StatusOK, comment)
	}
}

func UpdateCommentHandler(svc CommentsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req apidto.CommentRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		ok, err := svc.Update(c.Request.Context(), auth.UserID(c), c.Param("commentId"), req.Content)
		respondMutation(c, ok, err)
	}
}

func DeleteCommentHandler(svc CommentsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := svc.Delete(c.Request.Context(), auth.UserID(c), c.Param("commentId"))
		respondMutation(c, ok, err)
	}
}

func UpdateCommentLikeStatusHandler(svc CommentsAPI) gin.HandlerFunc {
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
		updated, err := svc.UpdateLikeStatus(c.Request.Context(), auth.UserID(c), c.Param("commentId"), status)
		respondMutation(c, updated, err)
	}
}
