package http

import (
	"context"
	"encoding/json"

	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// StatsReader summarises recorded improvement calls.
type StatsReader interface {
	Stats(ctx context.Context) ([]repo.FieldTypeStats, error)
}

type Handler struct {
	improver    usecase.TextImprover
	sessions    *usecase.SessionStore
	previewer   *usecase.Previewer
	stats       StatsReader
	validate    *validator.Validate
	defaultLang string
}

func NewHandler(improver usecase.TextImprover, sessions *usecase.SessionStore, previewer *usecase.Previewer, stats StatsReader, defaultLang string) *Handler {
	return &Handler{
		improver:    improver,
		sessions:    sessions,
		previewer:   previewer,
		stats:       stats,
		validate:    newValidator(),
		defaultLang: defaultLang,
	}
}

// RegisterRoutes mounts every endpoint. improveLimit guards the routes that
// reach the completion provider.
func (h *Handler) RegisterRoutes(app *fiber.App, improveLimit fiber.Handler) {
	app.Get("/test", h.Test)

	api := app.Group("/api")
	api.Post("/improve-text", improveLimit, h.ImproveText)
	api.Get("/improvements/stats", h.ImprovementStats)
	api.Post("/validate/personal", h.ValidatePersonal)
	api.Post("/validate/dates", h.ValidateDates)

	s := api.Group("/sessions")
	s.Post("/", h.CreateSession)
	s.Get("/:id", h.GetSession)
	s.Put("/:id", h.ImportSession)
	s.Delete("/:id", h.DeleteSession)
	s.Patch("/:id/personal", h.UpdatePersonal)
	s.Delete("/:id/personal", h.ResetPersonal)
	s.Get("/:id/validation", h.Validation)
	s.Post("/:id/improve", improveLimit, h.ImproveField)
	s.Get("/:id/preview", h.Preview)
	s.Get("/:id/export", h.Export)
	s.Post("/:id/:kind", h.AddEntity)
	s.Patch("/:id/:kind/:entityId", h.UpdateEntity)
	s.Delete("/:id/:kind/:entityId", h.RemoveEntity)
}

func (h *Handler) Test(c *fiber.Ctx) error {
	return c.SendString("backend running")
}

func (h *Handler) ImproveText(c *fiber.Ctx) error {
	var req improveTextRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}

	improved, err := h.improver.Improve(c.UserContext(), req.Text, req.FieldType)
	if err != nil {
		return err
	}
	return c.JSON(improveTextResponse{ImprovedText: improved})
}

func (h *Handler) ImprovementStats(c *fiber.Ctx) error {
	if h.stats == nil {
		return c.JSON(fiber.Map{"stats": []repo.FieldTypeStats{}})
	}
	stats, err := h.stats.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"stats": stats})
}

func (h *Handler) ValidatePersonal(c *fiber.Ctx) error {
	var p model.PersonalInfo
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	errs := model.ValidatePersonalInfo(p)
	return c.JSON(fiber.Map{"valid": len(errs) == 0, "errors": errs})
}

func (h *Handler) ValidateDates(c *fiber.Ctx) error {
	var req datesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	violations := model.DateViolations(req.StartDate, req.EndDate, req.IsCurrent)
	first := ""
	if len(violations) > 0 {
		first = violations[0]
	}
	if violations == nil {
		violations = []string{}
	}
	return c.JSON(fiber.Map{"error": first, "violations": violations})
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	id, ed := h.sessions.Create()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id.String(), "resume": ed.Snapshot()})
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	ed, err := h.editor(c)
	if err != nil {
		return err
	}
	return c.JSON(ed.Snapshot())
}

// ImportSession replaces the résumé with a schema-checked document.
func (h *Handler) ImportSession(c *fiber.Ctx) error {
	ed, err := h.editor(c)
	if err != nil {
		return err
	}
	body := c.Body()
	if err := model.ValidateDocument(body); err != nil {
		return err
	}
	var r model.Resume
	if err := json.Unmarshal(body, &r); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	out, err := ed.Replace(r)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *Handler) DeleteSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return usecase.ErrSessionNotFound
	}
	h.sessions.Delete(id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) UpdatePersonal(c *fiber.Ctx) error {
	ed, err := h.editor(c)
	if err != nil {
		return err
	}
	var req personalUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}
	p, errs, err := ed.SetPersonal(req.Field, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"personalInfo": p, "errors": errs})
}

func (h *Handler) ResetPersonal(c *fiber.Ctx) error {
	ed, err := h.editor(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"personalInfo": ed.ResetPersonal()})
}

func (h *Handler) AddEntity(c *fiber.Ctx) error {
	ed, kind, err := h.editorAndKind(c)
	if err != nil {
		return err
	}
	entity, err := ed.Add(kind)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(entity)
}

func (h *Handler) UpdateEntity(c *fiber.Ctx) error {
	ed, kind, err := h.editorAndKind(c)
	if err != nil {
		return err
	}
	var req entityUpdateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return err
	}
	list, err := ed.Update(kind, c.Params("entityId"), req.Field, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{string(kind): list})
}

func (h *Handler) RemoveEntity(c *fiber.Ctx) error {
	ed, kind, err := h.editorAndKind(c)
	if err != nil {
		return err
	}
	list, err := ed.Remove(kind, c.Params("entityId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{string(kind): list})
}

func (h *Handler) Validation(c *fiber.Ctx) error {
	ed, err := h.editor(c)
	if err != nil {
		return err
	}
	rep := ed.Validate()
	return c.JSON(fiber.Map{"valid": rep.Valid(), "report": rep})
}

func (h *Handler) ImproveField(c *fiber.Ctx) error {
	ed, err := h.editor(c)
	if err != nil {
		return err
	}
	var t usecase.Target
	if err := c.BodyParser(&t); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(t); err != nil {
		return err
	}
	r, err := ed.Improve(c.UserContext(), t)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	ed, err := h.editor(c)
	if err != nil {
		return err
	}
	return c.Render(usecase.PreviewPage, h.previewer.Binding(ed.Preview(h.lang(c))))
}

func (h *Handler) Export(c *fiber.Ctx) error {
	ed, err := h.editor(c)
	if err != nil {
		return err
	}
	a, err := ed.Export(c.UserContext(), h.lang(c))
	if err != nil {
		return err
	}
	c.Attachment(a.Name)
	c.Set(fiber.HeaderContentType, a.ContentType)
	return c.Send(a.Data)
}

func (h *Handler) editor(c *fiber.Ctx) (*usecase.Editor, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, usecase.ErrSessionNotFound
	}
	return h.sessions.Get(id)
}

func (h *Handler) editorAndKind(c *fiber.Ctx) (*usecase.Editor, usecase.Kind, error) {
	ed, err := h.editor(c)
	if err != nil {
		return nil, "", err
	}
	kind, err := usecase.ParseKind(c.Params("kind"))
	if err != nil {
		return nil, "", err
	}
	return ed, kind, nil
}

func (h *Handler) lang(c *fiber.Ctx) string {
	if l := c.Query("lang"); l != "" {
		return l
	}
	return h.defaultLang
}
