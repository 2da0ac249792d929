package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MUCCHU/imf-gadgets-api/app/dto"
	"github.com/MUCCHU/imf-gadgets-api/app/models"
	"github.com/MUCCHU/imf-gadgets-api/app/services"
)

type GadgetController struct{ Gadgets *services.GadgetService }

func NewGadgetController(gadgets *services.GadgetService) *GadgetController {
	return &GadgetController{Gadgets: gadgets}
}

func (c *GadgetController) Create(w http.ResponseWriter, r *http.Request) {
	g, err := c.Gadgets.Create()
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (c *GadgetController) List(w http.ResponseWriter, r *http.Request) {
	status := models.Status(r.URL.Query().Get("status"))
	reports, err := c.Gadgets.List(status)
	if err != nil {
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (c *GadgetController) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateGadgetRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	patch := services.GadgetPatch{Name: req.Name}
	if req.Status != nil {
		st := models.Status(*req.Status)
		patch.Status = &st
	}
	g, err := c.Gadgets.Update(r.PathValue("id"), patch)
	if err != nil {
		c.gadgetError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (c *GadgetController) Decommission(w http.ResponseWriter, r *http.Request) {
	g, err := c.Gadgets.Decommission(r.PathValue("id"))
	if err != nil {
		c.gadgetError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.DecommissionResponse{Message: "Gadget decommissioned", Gadget: *g})
}

func (c *GadgetController) SelfDestruct(w http.ResponseWriter, r *http.Request) {
	_, code, err := c.Gadgets.SelfDestruct(r.PathValue("id"))
	if err != nil {
		c.gadgetError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.SelfDestructResponse{Message: "Self-destruct sequence initiated", ConfirmationCode: code})
}

func (c *GadgetController) gadgetError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrGadgetNotFound):
		writeError(w, http.StatusNotFound, "Gadget not found")
	case errors.Is(err, services.ErrGadgetDecommissioned):
		writeError(w, http.StatusBadRequest, "Gadget is decommissioned")
	case errors.Is(err, services.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "Invalid status")
	default:
		internalError(w, r, err)
	}
}
