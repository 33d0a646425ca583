package main

import (
	"fmt"
	"net/http"

	"github.com/akeil/affinetool/internal/logging"
	"github.com/akeil/affinetool/pkg/server"
)

func doServe(s settings, addr string) error {
	p, err := loadPolygon(s)
	if err != nil {
		return err
	}
	rc, err := renderContext(s)
	if err != nil {
		return err
	}

	srv := server.New(p, rc)
	fmt.Printf("Listening on http://%v/\n", addr)
	logging.Info("Serving sessions on %v", addr)
	return http.ListenAndServe(addr, srv)
}
