package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/complymap/complymap/pkg/config"
	"github.com/complymap/complymap/pkg/engine"
	"github.com/complymap/complymap/pkg/server/store"
)

type Server struct {
	Stores store.Stores
	Engine *engine.Engine
	Config *config.Config
	Router *mux.Router
	DB     *gorm.DB
	srv    *http.Server
}

func NewServer(
	stores store.Stores,
	eng *engine.Engine,
	cfg *config.Config,
	db *gorm.DB,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Stores: stores,
		Engine: eng,
		Config: cfg,
		Router: router,
		DB:     db,
		srv:    srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
