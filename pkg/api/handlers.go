package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/IPampurin/LinkShortener/pkg/qr"
	"github.com/IPampurin/LinkShortener/pkg/service"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/logger"
)

// CreateShortLink обрабатывает POST /shorten
func CreateShortLink(svc service.ServiceMethods, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Ctx(c.Request.Context()).Error("неверный формат запроса", "error", err)
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "неверный формат запроса"})
			return
		}

		shortURL, err := svc.CreateShortLink(c.Request.Context(), req.OriginalURL, req.CustomShortCode, req.ExpiryDays)
		if err != nil {
			respondServiceError(c, log, err, "ошибка создания ссылки")
			return
		}

		c.JSON(http.StatusCreated, shortURL)
	}
}

// Redirect обрабатывает GET /s/:short_code
func Redirect(svc service.ServiceMethods, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		shortCode := c.Param("short_code")

		originalURL, err := svc.ResolveShortLink(
			c.Request.Context(),
			shortCode,
			c.ClientIP(),
			c.GetHeader("User-Agent"),
			c.GetHeader("Referer"),
		)
		if err != nil {
			respondServiceError(c, log, err, "ошибка получения ссылки")
			return
		}

		c.Redirect(http.StatusFound, originalURL)
	}
}

// GetStats обрабатывает GET /stats/:short_code
func GetStats(svc service.ServiceMethods, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		shortCode := c.Param("short_code")

		stats, err := svc.ShortLinkStats(c.Request.Context(), shortCode)
		if err != nil {
			respondServiceError(c, log, err, "ошибка получения статистики")
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

// GetQRCode обрабатывает GET /qr/:short_code?size=N
// (наличие записи проверяется как в статистике - без фильтра по сроку действия,
// в картинку кодируется сам короткий URL)
func GetQRCode(svc service.ServiceMethods, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		shortCode := c.Param("short_code")

		size := 0
		if raw := c.Query("size"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "параметр size должен быть числом"})
				return
			}
			size = parsed
		}

		if _, err := svc.ShortLinkStats(c.Request.Context(), shortCode); err != nil {
			respondServiceError(c, log, err, "ошибка получения ссылки для QR-кода")
			return
		}

		png, err := qr.Encode(svc.BuildShortURL(shortCode), size)
		if err != nil {
			log.Ctx(c.Request.Context()).Error("ошибка генерации QR-кода", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "внутренняя ошибка"})
			return
		}

		c.Data(http.StatusOK, "image/png", png)
	}
}

// GetAnalytics обрабатывает GET /analytics/:short_code?days=N
func GetAnalytics(svc service.ServiceMethods, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		shortCode := c.Param("short_code")

		days := 0
		if raw := c.Query("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "параметр days должен быть числом"})
				return
			}
			days = parsed
		}

		analytics, err := svc.ShortLinkAnalytics(c.Request.Context(), shortCode, days)
		if err != nil {
			respondServiceError(c, log, err, "ошибка получения аналитики")
			return
		}

		c.JSON(http.StatusOK, analytics)
	}
}

// GetLinks обрабатывает GET /links
func GetLinks(svc service.ServiceMethods, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		links, err := svc.LastLinks(c.Request.Context())
		if err != nil {
			respondServiceError(c, log, err, "ошибка получения списка ссылок")
			return
		}

		c.JSON(http.StatusOK, links)
	}
}

// respondServiceError сопоставляет типизированные ошибки бизнес-логики с HTTP-статусами
// (несуществующая и просроченная ссылка отвечают одинаковым 404 - наружу разница не утекает)
func respondServiceError(c *gin.Context, log logger.Logger, err error, msg string) {

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, service.ErrCodeTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "короткий код уже занят"})

	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "ссылка не найдена"})

	default:
		// сюда же попадает исчерпание бюджета генерации - внутренняя проблема сервиса
		log.Ctx(c.Request.Context()).Error(msg, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "внутренняя ошибка сервера"})
	}
}
