package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogger-platform/cmd/api/auth"
	apidto "blogger-platform/cmd/api/dto"
	"blogger-platform/models"
)

// 블로거(로그인 사용자) 전용 엔드포인트. 모두 UserAuthMiddleware 뒤에 놓인다.

func ListOwnedBlogsHandler(svc BlogsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.ListOwned(c.Request.Context(), parseQueryParams(c), auth.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// CreateBlogHandler godoc
// @Summary      Create a blog owned by the caller
// @Tags         blogger
// @Param        body  body  models.BlogInput  true  "Blog"
// @Success      201  {object}  object
// @Failure      400  {object}  apidto.ErrorResponseDTO
// @Router       /blogger/blogs [post]
func CreateBlogHandler(svc BlogsAPI, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.BlogInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err)
			return
		}
		ctx := c.Request.Context()
		userID := auth.UserID(c)
		user, err := users.GetByIDOrLoginOrEmail(ctx, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		if user == nil {
			auth.AbortWithUnauthorized(c, auth.ErrInvalidToken)
			return
		}
		blog, err := svc.Create(ctx, user.ID, user.Login, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, blog)
	}
}

func UpdateBlogHandler(svc BlogsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.BlogInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err)
			return
		}
		ok, err := svc.Update(c.Request.Context(), auth.UserID(c), c.Param("blogId"), in)
		respondMutation(c, ok, err)
	}
}

func DeleteBlogHandler(svc BlogsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := svc.Delete(c.Request.Context(), auth.UserID(c), c.Param("blogId"))
		respondMutation(c, ok, err)
	}
}

func CreateBlogPostHandler(svc PostsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.PostInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err)
			return
		}
		post, err := svc.CreatePost(c.Request.Context(), auth.UserID(c), c.Param("blogId"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

func UpdateBlogPostHandler(svc PostsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.PostInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBadRequest(c, err)
			return
		}
		ok, err := svc.UpdatePost(c.Request.Context(), auth.UserID(c), c.Param("blogId"), c.Param("postId"), in)
		respondMutation(c, ok, err)
	}
}

func DeleteBlogPostHandler(svc PostsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := svc.DeletePost(c.Request.Context(), auth.UserID(c), c.Param("blogId"), c.Param("postId"))
		respondMutation(c, ok, err)
	}
}

// ListBloggerCommentsHandler 는 호출자 소유 블로그들에 달린 모든 댓글을 돌려준다.
func ListBloggerCommentsHandler(svc CommentsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.ListForBlogger(c.Request.Context(), parseQueryParams(c), auth.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// BanUserForBlogHandler godoc
// @Summary      Ban or unban a user on one of the caller's blogs
// @Tags         blogger
// @Param        userId  path  string  true  "User id"
// @Param        body    body  apidto.BanUserRequestDTO  true  "Ban"
// @Success      204
// @Failure      403  {object}  apidto.ErrorResponseDTO
// @Failure      404  {object}  apidto.ErrorResponseDTO
// @Router       /blogger/users/{userId}/ban [put]
func BanUserForBlogHandler(svc BlogsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req apidto.BanUserRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		err := svc.BanUser(c.Request.Context(), auth.UserID(c), req.BlogID, c.Param("userId"), req.IsBanned, req.BanReason)
		respondMutation(c, err == nil, err)
	}
}
