package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"
)

// профилирование больших архивов; слушает в фоне до выхода процесса
func enablePPROF(addr string) {
	srv := &http.Server{Addr: addr, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Printf("pprof: http://%s/debug/pprof/", addr)
		if err := srv.ListenAndServe(); err != nil {
			log.Printf("pprof error: %v", err)
		}
	}()
}
