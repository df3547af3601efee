package rest

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/grezzle/goblin-closet/internal/domain"
	"github.com/grezzle/goblin-closet/internal/present/rest/middleware"
	"github.com/grezzle/goblin-closet/internal/present/rest/presenter"
	"github.com/grezzle/goblin-closet/internal/service"
	"github.com/grezzle/goblin-closet/internal/usecase"
	"github.com/grezzle/goblin-closet/markup"
)

const (
	maxUploadBytes   = 5 << 20
	stateCookieTTL   = 10 * time.Minute
	sessionCookieTTL = 30 * 24 * time.Hour
)

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Handler struct {
	posts     *usecase.PostUsecase
	lore      *usecase.LoreUsecase
	inventory *usecase.InventoryUsecase
	auth      *service.AuthService
	images    usecase.ImageStore
	publicURL string
}

func NewHandler(
	posts *usecase.PostUsecase,
	lore *usecase.LoreUsecase,
	inventory *usecase.InventoryUsecase,
	auth *service.AuthService,
	images usecase.ImageStore,
	publicURL string,
) *Handler {
	return &Handler{
		posts:     posts,
		lore:      lore,
		inventory: inventory,
		auth:      auth,
		images:    images,
		publicURL: publicURL,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, authmw *middleware.AuthMiddleware) {
	e.GET("/health", h.handleHealth)
	e.GET("/.well-known/goblin-closet", h.handleWellKnown)

	e.GET("/auth/login", h.handleLogin)
	e.GET("/auth/callback", h.handleCallback)
	e.POST("/auth/logout", h.handleLogout)

	api := e.Group("/api/v1")
	api.GET("/session", h.handleSession)

	api.GET("/posts", h.handleListPosts)
	api.GET("/posts/:slug", h.handleGetPost)
	api.POST("/posts", h.handleCreatePost, authmw.RequireAdmin)
	api.PUT("/posts", h.handleUpdatePost, authmw.RequireAdmin)

	api.GET("/lore", h.handleListLore)
	api.POST("/lore", h.handleCreateLore, authmw.RequireAdmin)
	api.PUT("/lore", h.handleUpdateLore, authmw.RequireAdmin)
	api.DELETE("/lore", h.handleDeleteLore, authmw.RequireAdmin)

	api.GET("/inventory", h.handleListInventory)
	api.POST("/inventory", h.handleCreateInventory, authmw.RequireAdmin)
	api.PUT("/inventory", h.handleUpdateInventory, authmw.RequireAdmin)
	api.DELETE("/inventory", h.handleDeleteInventory, authmw.RequireAdmin)

	api.POST("/upload", h.handleUpload, authmw.RequireAdmin)
}

func (h *Handler) handleHealth(c echo.Context) error {
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleWellKnown(c echo.Context) error {
	return presenter.OK(c, echo.Map{
		"version": "1.0",
		"url":     h.publicURL,
		"endpoints": map[string]string{
			"posts":     "/api/v1/posts",
			"lore":      "/api/v1/lore",
			"inventory": "/api/v1/inventory",
			"session":   "/api/v1/session",
		},
	})
}

// --- auth ---

func (h *Handler) handleLogin(c echo.Context) error {
	state, err := service.NewStateToken()
	if err != nil {
		return presenter.Error(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     domain.OAuthStateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int(stateCookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, h.auth.AuthCodeURL(state))
}

func (h *Handler) handleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	stateCookie, err := c.Cookie(domain.OAuthStateCookieName)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != c.QueryParam("state") {
		return presenter.BadRequestMessage(c, "oauth state mismatch")
	}

	code := c.QueryParam("code")
	if code == "" {
		return presenter.BadRequestMessage(c, "missing authorization code")
	}

	token, _, err := h.auth.HandleCallback(ctx, code)
	if err != nil {
		return presenter.Error(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     domain.OAuthStateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	c.SetCookie(&http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionCookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) handleLogout(c echo.Context) error {
	ctx := c.Request().Context()

	if cookie, err := c.Cookie(domain.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.auth.Logout(ctx, cookie.Value); err != nil {
			return presenter.Error(c, err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleSession(c echo.Context) error {
	identity := middleware.IdentityFromContext(c.Request().Context())
	if identity == nil {
		return presenter.OK(c, echo.Map{"user": nil, "isAdmin": false})
	}
	return presenter.OK(c, echo.Map{
		"user":    identity,
		"isAdmin": h.auth.IsAdmin(identity),
	})
}

// --- posts ---

func (h *Handler) handleListPosts(c echo.Context) error {
	ctx := c.Request().Context()

	q := ParsePostQuery(c.QueryParams())
	posts, total, err := h.posts.List(ctx, q)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, echo.Map{
		"posts": posts,
		"total": total,
		"page":  q.Page.Page,
		"pages": q.Page.Pages(total),
	})
}

func (h *Handler) handleGetPost(c echo.Context) error {
	ctx := c.Request().Context()

	post, err := h.posts.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{
		"post": post,
		"html": markup.ToHTML(post.Content),
	})
}

func (h *Handler) handleCreatePost(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.PostInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	post, err := h.posts.Create(ctx, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, echo.Map{"post": post})
}

func (h *Handler) handleUpdatePost(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.PostInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	post, err := h.posts.Update(ctx, c.QueryParam("id"), input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"post": post})
}

// --- lore ---

func (h *Handler) handleListLore(c echo.Context) error {
	ctx := c.Request().Context()

	q := ParseLoreQuery(c.QueryParams())
	entries, total, err := h.lore.List(ctx, q)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, echo.Map{
		"lore":  entries,
		"total": total,
		"page":  q.Page.Page,
		"pages": q.Page.Pages(total),
	})
}

func (h *Handler) handleCreateLore(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.LoreInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	entry, err := h.lore.Create(ctx, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, echo.Map{"lore": entry})
}

func (h *Handler) handleUpdateLore(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.LoreInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	entry, err := h.lore.Update(ctx, c.QueryParam("id"), input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"lore": entry})
}

func (h *Handler) handleDeleteLore(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.lore.Delete(ctx, c.QueryParam("id")); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

// --- inventory ---

func (h *Handler) handleListInventory(c echo.Context) error {
	ctx := c.Request().Context()

	q := ParseInventoryQuery(c.QueryParams())
	items, total, err := h.inventory.List(ctx, q)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, echo.Map{
		"inventory": items,
		"total":     total,
		"page":      q.Page.Page,
		"pages":     q.Page.Pages(total),
	})
}

func (h *Handler) handleCreateInventory(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.InventoryInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	item, err := h.inventory.Create(ctx, input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, echo.Map{"item": item})
}

func (h *Handler) handleUpdateInventory(c echo.Context) error {
	ctx := c.Request().Context()

	var input usecase.InventoryInput
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequestMessage(c, "invalid request body")
	}

	item, err := h.inventory.Update(ctx, c.QueryParam("id"), input)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"item": item})
}

func (h *Handler) handleDeleteInventory(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.inventory.Delete(ctx, c.QueryParam("id")); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

// --- upload ---

// handleUpload streams an image to external storage. The record referencing
// the image is created afterwards by a separate request, so nothing here
// touches the database.
func (h *Handler) handleUpload(c echo.Context) error {
	ctx := c.Request().Context()

	file, err := c.FormFile("file")
	if err != nil {
		return presenter.BadRequestMessage(c, "no file uploaded")
	}
	if file.Size > maxUploadBytes {
		return presenter.BadRequestMessage(c, "file too large, maximum size is 5MB")
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		return presenter.BadRequestMessage(c, "invalid file type, upload an image (JPEG, PNG, GIF, WebP)")
	}

	src, err := file.Open()
	if err != nil {
		return presenter.Error(c, err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(file.Filename))
	image, err := h.images.Upload(ctx, name, contentType, src)
	if err != nil {
		return presenter.Error(c, err)
	}

	return presenter.OK(c, echo.Map{
		"url":      image.URL,
		"filename": image.Filename,
	})
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-':
			return r
		default:
			return -1
		}
	}, name)
}
