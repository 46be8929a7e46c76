package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/service"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// PortfolioHandler предоставляет HTTP слой для агрегата портфолио,
// импорта проектов с GitHub и формы обратной связи.
type PortfolioHandler struct {
	portfolios *service.PortfolioService
	github     *service.GitHubService
}

// NewPortfolioHandler создаёт хэндлер.
func NewPortfolioHandler(portfolios *service.PortfolioService, github *service.GitHubService) *PortfolioHandler {
	return &PortfolioHandler{portfolios: portfolios, github: github}
}

// Get обрабатывает GET /portfolio/:userId.
func (h *PortfolioHandler) Get(c *gin.Context) {
	userID := c.Param("userId")

	p, reviews, err := h.portfolios.Fetch(c.Request.Context(), userID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PortfolioMessageResponse{
		Message:   "портфолио получено",
		Portfolio: dto.NewPortfolioResponse(p, reviews),
	})
}

// Upsert обрабатывает POST /portfolio/:userId: создаёт портфолио с дефолтами
// либо обновляет существующее переданными полями.
func (h *PortfolioHandler) Upsert(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.UpsertPortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	p, created, err := h.portfolios.CreateOrUpdate(c.Request.Context(), userID, service.PortfolioInput{
		Theme:      req.Theme,
		About:      req.About,
		Skills:     req.Skills,
		Projects:   req.Projects,
		Experience: req.Experience,
		Contact:    req.Contact,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	status := http.StatusOK
	message := "портфолио обновлено"
	if created {
		status = http.StatusCreated
		message = "портфолио создано"
	}

	c.JSON(status, gin.H{"message": message, "portfolio": p})
}

// Delete обрабатывает DELETE /portfolio/:userId.
func (h *PortfolioHandler) Delete(c *gin.Context) {
	userID := c.Param("userId")

	if err := h.portfolios.Delete(c.Request.Context(), userID); err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "портфолио удалено"})
}

// AddSkill обрабатывает POST /portfolio/:userId/skills.
func (h *PortfolioHandler) AddSkill(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := validation.ValidateSkillLevel(req.Level); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	p, err := h.portfolios.AddSkill(c.Request.Context(), userID, models.Skill{
		Name:  req.Name,
		Level: req.Level,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "навык добавлен", "portfolio": p})
}

// UpdateSkill обрабатывает PUT /portfolio/:userId/skills/:skillIndex.
func (h *PortfolioHandler) UpdateSkill(c *gin.Context) {
	userID := c.Param("userId")

	index, err := common.ParseIndexParam(c, "skillIndex")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := validation.ValidateSkillLevel(req.Level); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	p, err := h.portfolios.UpdateSkill(c.Request.Context(), userID, index, models.Skill{
		Name:  req.Name,
		Level: req.Level,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "навык обновлён", "portfolio": p})
}

// DeleteSkill обрабатывает DELETE /portfolio/:userId/skills/:skillIndex.
func (h *PortfolioHandler) DeleteSkill(c *gin.Context) {
	userID := c.Param("userId")

	index, err := common.ParseIndexParam(c, "skillIndex")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	p, err := h.portfolios.DeleteSkill(c.Request.Context(), userID, index)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "навык удалён", "portfolio": p})
}

// AddProject обрабатывает POST /portfolio/:userId/projects.
func (h *PortfolioHandler) AddProject(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	for _, link := range []string{req.RepoLink, req.LiveDemo} {
		if err := validation.ValidateExternalLink(link); err != nil {
			common.RespondBadRequest(c, err.Error())
			return
		}
	}

	p, err := h.portfolios.AddProject(c.Request.Context(), userID, projectFromRequest(req))
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "проект добавлен", "portfolio": p})
}

// UpdateProject обрабатывает PUT /portfolio/:userId/projects/:projectIndex.
func (h *PortfolioHandler) UpdateProject(c *gin.Context) {
	userID := c.Param("userId")

	index, err := common.ParseIndexParam(c, "projectIndex")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	p, err := h.portfolios.UpdateProject(c.Request.Context(), userID, index, projectFromRequest(req))
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "проект обновлён", "portfolio": p})
}

// DeleteProject обрабатывает DELETE /portfolio/:userId/projects/:projectIndex.
func (h *PortfolioHandler) DeleteProject(c *gin.Context) {
	userID := c.Param("userId")

	index, err := common.ParseIndexParam(c, "projectIndex")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	p, err := h.portfolios.DeleteProject(c.Request.Context(), userID, index)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "проект удалён", "portfolio": p})
}

// AddExperience обрабатывает POST /portfolio/:userId/experience.
func (h *PortfolioHandler) AddExperience(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	p, err := h.portfolios.AddExperience(c.Request.Context(), userID, models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Duration:    req.Duration,
		Description: req.Description,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "запись опыта добавлена", "portfolio": p})
}

// UpdateExperience обрабатывает PUT /portfolio/:userId/experience/:experienceIndex.
func (h *PortfolioHandler) UpdateExperience(c *gin.Context) {
	userID := c.Param("userId")

	index, err := common.ParseIndexParam(c, "experienceIndex")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	p, err := h.portfolios.UpdateExperience(c.Request.Context(), userID, index, models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Duration:    req.Duration,
		Description: req.Description,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "запись опыта обновлена", "portfolio": p})
}

// DeleteExperience обрабатывает DELETE /portfolio/:userId/experience/:experienceIndex.
func (h *PortfolioHandler) DeleteExperience(c *gin.Context) {
	userID := c.Param("userId")

	index, err := common.ParseIndexParam(c, "experienceIndex")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	p, err := h.portfolios.DeleteExperience(c.Request.Context(), userID, index)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "запись опыта удалена", "portfolio": p})
}

// UpdateTheme обрабатывает PATCH /portfolio/:userId/theme.
func (h *PortfolioHandler) UpdateTheme(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	p, err := h.portfolios.UpdateTheme(c.Request.Context(), userID, req.Theme)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "тема обновлена", "portfolio": p})
}

// UpdateContactInfo обрабатывает PUT /portfolio/:userId/contact.
func (h *PortfolioHandler) UpdateContactInfo(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.UpdateContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	p, err := h.portfolios.UpdateContactInfo(c.Request.Context(), userID, service.ContactInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		GitHub:   req.GitHub,
		LinkedIn: req.LinkedIn,
		Twitter:  req.Twitter,
		Website:  req.Website,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "контакты обновлены", "portfolio": p})
}

// ImportGitHub обрабатывает GET /portfolio/github/:username.
func (h *PortfolioHandler) ImportGitHub(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		common.RespondBadRequest(c, "имя пользователя GitHub обязательно")
		return
	}

	projects, err := h.github.FetchUserProjects(c.Request.Context(), username)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "проекты получены", "projects": projects})
}

// ContactForm обрабатывает POST /portfolio/:userId/contact.
// Сообщение логируется: почтовой интеграции у сервиса нет.
func (h *PortfolioHandler) ContactForm(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := validation.ValidateNonEmpty("имя", req.Name); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}
	if err := validation.ValidateContactMessage(req.Message); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if logger.Log != nil {
		logger.Log.WithFields(logrus.Fields{
			"portfolio_owner": userID,
			"sender_name":     req.Name,
			"sender_email":    req.Email,
			"subject":         req.Subject,
			"message":         req.Message,
		}).Info("Получено сообщение через форму обратной связи")
	}

	c.JSON(http.StatusOK, gin.H{"message": "сообщение отправлено", "success": true})
}

// projectFromRequest отображает dto в модель проекта.
func projectFromRequest(req dto.ProjectRequest) models.Project {
	return models.Project{
		Title:        req.Title,
		Description:  req.Description,
		RepoLink:     req.RepoLink,
		LiveDemo:     req.LiveDemo,
		Image:        req.Image,
		Category:     req.Category,
		Technologies: req.Technologies,
		Featured:     req.Featured,
	}
}
