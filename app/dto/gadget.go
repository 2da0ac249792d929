package dto

import "github.com/MUCCHU/imf-gadgets-api/app/models"

type UpdateGadgetRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

type DecommissionResponse struct {
	Message string        `json:"message"`
	Gadget  models.Gadget `json:"gadget"`
}

type SelfDestructResponse struct {
	Message          string `json:"message"`
	ConfirmationCode int    `json:"confirmationCode"`
}
