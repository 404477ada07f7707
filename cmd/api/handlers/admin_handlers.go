package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apidto "blogger-platform/cmd/api/dto"
)

// @Summary List blogs for super-admin
// @Description Lists every blog; banStatus selects all, banned or notBanned
// @Tags admin
// @Produce json
// @Param banStatus query string false "all | banned | notBanned" default(all)
// @Param searchNameTerm query string false "Name contains"
// @Param pageNumber query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} object
// @Failure 500 {object} apidto.ErrorResponseDTO
// @Router /sa/blogs [get]
func AdminListBlogsHandler(svc BlogsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.AdminList(c.Request.Context(), parseQueryParams(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// @Summary Bind an ownerless blog to a user
// @Tags admin
// @Param blogId path string true "Blog id"
// @Param userId path string true "User id"
// @Success 204
// @Failure 400 {object} apidto.ErrorResponseDTO
// @Router /sa/blogs/{blogId}/bind-with-user/{userId} [put]
func AdminBindBlogHandler(svc BlogsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := svc.Bind(c.Request.Context(), c.Param("blogId"), c.Param("userId"))
		respondMutation(c, ok, err)
	}
}

// @Summary Ban or unban a blog
// @Description id may be the blog id or its owner's user id
// @Tags admin
// @Param blogId path string true "Blog id or owner id"
// @Param body body apidto.BanBlogRequestDTO true "Ban"
// @Success 204
// @Failure 404 {object} apidto.ErrorResponseDTO
// @Router /sa/blogs/{blogId}/ban [put]
func AdminBanBlogHandler(svc BlogsAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req apidto.BanBlogRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		ok, err := svc.UpdateBanStatus(c.Request.Context(), c.Param("blogId"), req.IsBanned)
		respondMutation(c, ok, err)
	}
}

// @Summary Ban or unban a user account
// @Description Bans the account, the blog it owns and every reaction it left
// @Tags admin
// @Param userId path string true "User id"
// @Param body body apidto.BanUserBySARequestDTO true "Ban"
// @Success 204
// @Failure 400 {object} apidto.ErrorResponseDTO
// @Failure 404 {object} apidto.ErrorResponseDTO
// @Router /sa/users/{userId}/ban [put]
func AdminBanUserHandler(svc UsersAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req apidto.BanUserBySARequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		ok, err := svc.BanUser(c.Request.Context(), c.Param("userId"), req.IsBanned, req.BanReason)
		respondMutation(c, ok, err)
	}
}
