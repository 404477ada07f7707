package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apidto "blogger-platform/cmd/api/dto"
	"blogger-platform/cmd/api/trace"
	"blogger-platform/internal/logger"
	"blogger-platform/query"
	"blogger-platform/repositories"
	"blogger-platform/services"
)

// Pagination 은 목록 API 의 기본/최대 페이지 크기다.
type Pagination struct {
	DefaultPageSize int
	MaxPageSize     int
}

var pageDefaults = Pagination{DefaultPageSize: 10, MaxPageSize: 100}

// ConfigurePagination 은 라우터 구성 시 한 번 호출된다.
func ConfigurePagination(p Pagination) {
	if p.DefaultPageSize > 0 {
		pageDefaults.DefaultPageSize = p.DefaultPageSize
	}
	if p.MaxPageSize > 0 {
		pageDefaults.MaxPageSize = p.MaxPageSize
	}
}

// parseQueryParams 는 목록 쿼리 문자열을 정규화된 query.Params 로 바꾼다.
// 숫자가 아닌 페이지 값은 기본값으로 대체된다.
func parseQueryParams(c *gin.Context) query.Params {
	pageNumber, _ := strconv.Atoi(c.Query("pageNumber"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	return query.Params{
		SearchNameTerm: c.Query("searchNameTerm"),
		SortBy:         c.Query("sortBy"),
		SortDirection:  query.ParseSortDirection(c.Query("sortDirection")),
		PageNumber:     pageNumber,
		PageSize:       pageSize,
		BanStatus:      query.ParseBanStatus(c.Query("banStatus")),
	}.Normalize(pageDefaults.DefaultPageSize, pageDefaults.MaxPageSize)
}

// respondError 는 서비스 에러를 HTTP 상태로 매핑한다.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, apidto.ErrorResponseDTO{Error: "not_found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, apidto.ErrorResponseDTO{Error: "forbidden"})
	case errors.Is(err, services.ErrAlreadyBound), errors.Is(err, repositories.ErrDuplicateKey):
		c.JSON(http.StatusBadRequest, apidto.ErrorResponseDTO{Error: err.Error()})
	default:
		logger.ErrorWithFields("request failed", logger.Fields{
			"path":       c.FullPath(),
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"error":      err.Error(),
		})
		c.JSON(http.StatusInternalServerError, apidto.ErrorResponseDTO{Error: "internal_error"})
	}
}

func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, apidto.ErrorResponseDTO{Error: "not_found"})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, apidto.ErrorResponseDTO{Error: err.Error()})
}

// respondMutation 은 (bool, error) 형태의 변경 결과를 204/404 로 내린다.
func respondMutation(c *gin.Context, ok bool, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		respondNotFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}
