package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"cropsight/internal/domain/service"
	"cropsight/pkg/errors"
	"cropsight/pkg/response"
)

const imageUploadFolder = "cropsight/images"

// ImageHandler is the pass-through relay between multipart uploads and the
// object store. It never persists anything itself.
type ImageHandler struct {
	fileService service.FileUploadService
}

func NewImageHandler(fileService service.FileUploadService) *ImageHandler {
	return &ImageHandler{fileService: fileService}
}

func (h *ImageHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("No image file provided", err))
	}

	if fileHeader.Size > maxStockImageSize {
		return response.Error(c, errors.BadRequest("Each image must be 5MB or smaller", nil))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return response.Error(c, errors.BadRequest("Only image files are allowed", nil))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read uploaded file", err))
	}
	defer file.Close()

	result, err := h.fileService.UploadFile(c.Request().Context(), file, contentType, imageUploadFolder)
	if err != nil {
		return response.Error(c, errors.Upstream("Failed to upload image", err))
	}

	return response.Created(c, result)
}

func (h *ImageHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("No image files provided", err))
	}

	files := form.File["images"]
	if len(files) == 0 {
		return response.Error(c, errors.BadRequest("No image files provided", nil))
	}
	if len(files) > maxStockImages {
		return response.Error(c, errors.BadRequest("At most 5 images are allowed", nil))
	}

	results := make([]*service.UploadResult, 0, len(files))
	for _, fileHeader := range files {
		if fileHeader.Size > maxStockImageSize {
			return response.Error(c, errors.BadRequest("Each image must be 5MB or smaller", nil))
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			return response.Error(c, errors.BadRequest("Only image files are allowed", nil))
		}

		file, err := fileHeader.Open()
		if err != nil {
			return response.Error(c, errors.BadRequest("Failed to read uploaded file", err))
		}

		result, err := h.fileService.UploadFile(c.Request().Context(), file, contentType, imageUploadFolder)
		file.Close()
		if err != nil {
			return response.Error(c, errors.Upstream("Failed to upload image", err))
		}
		results = append(results, result)
	}

	return response.Created(c, results)
}

// DeleteImage takes the object name from the wildcard segment because storage
// IDs contain slashes.
func (h *ImageHandler) DeleteImage(c echo.Context) error {
	storageID := c.Param("*")
	if storageID == "" {
		return response.Error(c, errors.BadRequest("Image ID is required", nil))
	}

	if err := h.fileService.DeleteFile(c.Request().Context(), storageID); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Image deleted successfully", nil)
}

func (h *ImageHandler) GetImageDetails(c echo.Context) error {
	storageID := c.Param("*")
	if storageID == "" {
		return response.Error(c, errors.BadRequest("Image ID is required", nil))
	}

	details, err := h.fileService.GetFileDetails(c.Request().Context(), storageID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, details)
}
