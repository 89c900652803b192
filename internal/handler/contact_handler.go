package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dresiko/media-match-homework/internal/contacts"
	"github.com/dresiko/media-match-homework/internal/model"
)

type ContactDirectory interface {
	Resolve(name string) (*model.ContactInfo, error)
	Search(query string) ([]model.ContactInfo, error)
	All() ([]model.ContactInfo, error)
}

type ContactHandler struct {
	directory ContactDirectory
}

func NewContactHandler(directory ContactDirectory) *ContactHandler {
	return &ContactHandler{directory: directory}
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		name = c.Query("name")
	}
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reporter name is required"})
		return
	}

	contact, err := h.directory.Resolve(name)
	if err != nil {
		slog.Error("error resolving contact", "name", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Contact lookup failed"})
		return
	}

	if contact == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":         "Reporter not found",
			"sanitizedName": contacts.NormalizeName(name),
		})
		return
	}

	c.JSON(http.StatusOK, toContactResponse(*contact))
}

func (h *ContactHandler) SearchContacts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	found, err := h.directory.Search(query)
	if err != nil {
		slog.Error("error searching contacts", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Contact lookup failed"})
		return
	}

	res := make([]ContactResponse, 0, len(found))
	for _, contact := range found {
		res = append(res, toContactResponse(contact))
	}
	c.JSON(http.StatusOK, gin.H{"contacts": res, "total": len(res)})
}

func (h *ContactHandler) GetAllContacts(c *gin.Context) {
	all, err := h.directory.All()
	if err != nil {
		slog.Error("error listing contacts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Contact lookup failed"})
		return
	}

	res := make([]ContactResponse, 0, len(all))
	for _, contact := range all {
		res = append(res, toContactResponse(contact))
	}
	c.JSON(http.StatusOK, gin.H{"contacts": res, "total": len(res)})
}

func toContactResponse(contact model.ContactInfo) ContactResponse {
	return ContactResponse{
		Name:     contact.Name,
		Email:    optionalString(contact.Email),
		Linkedin: optionalString(contact.LinkedIn),
		Twitter:  optionalString(contact.Twitter),
	}
}
