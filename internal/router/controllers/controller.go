package controllers

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/textileio/go-autostaker/buildinfo"
	"github.com/textileio/go-autostaker/pkg/errors"
	"github.com/textileio/go-autostaker/pkg/staker"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Status is the body of the status endpoint.
type Status struct {
	Address     string        `json:"address"`
	Pool        string        `json:"pool"`
	Token       string        `json:"token"`
	Coordinator staker.Status `json:"coordinator"`
}

// Controller defines the HTTP handlers for the status APIs.
type Controller struct {
	coordinator staker.Coordinator
	address     string
	pool        string
	token       string
}

// NewController creates a new Controller.
func NewController(coordinator staker.Coordinator, address, pool, token string) *Controller {
	return &Controller{
		coordinator: coordinator,
		address:     address,
		pool:        pool,
		token:       token,
	}
}

// GetStatus returns the coordinator status.
func (c *Controller) GetStatus(rw http.ResponseWriter, r *http.Request) {
	body, err := json.Marshal(Status{
		Address:     c.address,
		Pool:        c.pool,
		Token:       c.token,
		Coordinator: c.coordinator.Status(),
	})
	if err != nil {
		log.Ctx(r.Context()).
			Error().
			Err(err).
			Msg("marshaling status")
		errors.WriteServiceError(rw, http.StatusInternalServerError, "Can't get status")
		return
	}
	rw.Header().Set("Content-type", "application/json")
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write(body)
}

// Version returns git information of the running binary.
func (c *Controller) Version(rw http.ResponseWriter, _ *http.Request) {
	rw.Header().Set("Content-type", "application/json")
	rw.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(rw).Encode(buildinfo.GetSummary())
}
