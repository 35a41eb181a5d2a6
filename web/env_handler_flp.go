package web

import (
	"net/http"
)

func (env *Environ) FLPList(rw http.ResponseWriter, req *http.Request) {
	list, err := env.topology.FLPs()
	if err != nil {
		env.error(rw, req, err)
		return
	}
	if err := env.render.JSON(rw, http.StatusOK, list); err != nil {
		env.error(rw, req, err)
	}
}

func (env *Environ) Status(rw http.ResponseWriter, req *http.Request) {
	leader, err := env.topology.Leader()
	if err != nil {
		env.error(rw, req, err)
		return
	}
	body := struct {
		Leader string `json:"leader"`
	}{leader}
	if err := env.render.JSON(rw, http.StatusOK, body); err != nil {
		env.error(rw, req, err)
	}
}
