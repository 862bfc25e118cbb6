package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/media"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/store"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

const slideFolder = "quran_slides"

type SlideHandler struct {
	slides   store.SlideStore
	uploader media.Uploader
}

func NewSlideHandler(slides store.SlideStore, uploader media.Uploader) *SlideHandler {
	return &SlideHandler{slides: slides, uploader: uploader}
}

func (h *SlideHandler) Active(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	slides, err := h.slides.Active(ctx)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to fetch slides")
		return
	}
	utils.SuccessResponse(c, 200, slides)
}

func (h *SlideHandler) All(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	slides, err := h.slides.All(ctx)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to fetch slides")
		return
	}
	utils.SuccessResponse(c, 200, slides)
}

func (h *SlideHandler) Create(c *gin.Context) {
	fileHeader, err := c.FormFile("imageFile")
	if err != nil {
		utils.ErrorResponse(c, 400, "An image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, 400, "Could not read image file")
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	imageURL, err := h.uploader.Upload(ctx, file, slideFolder)
	if err != nil {
		utils.ErrorResponse(c, 500, "Image upload failed")
		return
	}

	slide := models.Slide{
		Title:    c.PostForm("title"),
		Text:     c.PostForm("text"),
		ImageURL: imageURL,
		IsActive: parseBoolDefault(c.PostForm("isActive"), true),
		Order:    parseIntDefault(c.PostForm("order"), 0),
	}

	if err := h.slides.Create(ctx, &slide); err != nil {
		utils.ErrorResponse(c, 500, "Failed to create slide")
		return
	}
	utils.SuccessResponse(c, 201, slide)
}

func (h *SlideHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid slide ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	slide, err := h.slides.GetByID(ctx, id)
	if err != nil {
		if err == store.ErrNotFound {
			utils.ErrorResponse(c, 404, "Slide not found")
			return
		}
		utils.ErrorResponse(c, 500, "Internal server error")
		return
	}

	// The image is kept unless a replacement file is uploaded.
	if fileHeader, err := c.FormFile("imageFile"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			utils.ErrorResponse(c, 400, "Could not read image file")
			return
		}
		defer file.Close()

		imageURL, err := h.uploader.Upload(ctx, file, slideFolder)
		if err != nil {
			utils.ErrorResponse(c, 500, "Image upload failed")
			return
		}
		slide.ImageURL = imageURL
	}

	if v := c.PostForm("title"); v != "" {
		slide.Title = v
	}
	if v := c.PostForm("text"); v != "" {
		slide.Text = v
	}
	if v := c.PostForm("isActive"); v != "" {
		slide.IsActive = parseBoolDefault(v, slide.IsActive)
	}
	if v := c.PostForm("order"); v != "" {
		slide.Order = parseIntDefault(v, slide.Order)
	}

	if err := h.slides.Update(ctx, slide); err != nil {
		utils.ErrorResponse(c, 500, "Failed to update slide")
		return
	}
	utils.SuccessResponse(c, 200, slide)
}

func (h *SlideHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, 400, "Invalid slide ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.slides.Delete(ctx, id); err != nil {
		utils.ErrorResponse(c, 500, "Failed to delete slide")
		return
	}
	utils.SuccessResponse(c, 200, gin.H{"message": "Slide deleted"})
}

func parseBoolDefault(s string, def bool) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}

func parseIntDefault(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
