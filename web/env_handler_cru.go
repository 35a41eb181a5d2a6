package web

import (
	"encoding/json"
	"net/http"
	"ovis/cardmap/topology"
)

func (env *Environ) CRUList(rw http.ResponseWriter, req *http.Request) {
	cards, err := env.topology.CRUs()
	if err != nil {
		env.error(rw, req, err)
		return
	}
	if err := env.render.JSON(rw, http.StatusOK, cards.InfoOnly()); err != nil {
		env.error(rw, req, err)
	}
}

func (env *Environ) CRUConfigList(rw http.ResponseWriter, req *http.Request) {
	cards, err := env.topology.CRUsWithConfig()
	if err != nil {
		env.error(rw, req, err)
		return
	}
	if err := env.render.JSON(rw, http.StatusOK, cards); err != nil {
		env.error(rw, req, err)
	}
}

func (env *Environ) CRUConfigSave(rw http.ResponseWriter, req *http.Request) {
	cards := topology.Topology{}
	if err := json.NewDecoder(req.Body).Decode(&cards); err != nil {
		env.message(rw, http.StatusBadRequest, "invalid topology document: "+err.Error())
		return
	}
	pairs, err := env.topology.SaveConfig(cards)
	if err != nil {
		env.error(rw, req, err)
		return
	}
	if err := env.render.JSON(rw, http.StatusOK, pairs); err != nil {
		env.error(rw, req, err)
	}
}
