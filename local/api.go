package local
import (
	"os"
	"strings"
	"net/http"

	"stegocrypt/util"
	"stegocrypt/config"
)

/*
 * package local contains the local API server: the browser front end
 * uploads images here and gets json back.
 */
func NewApiServer( conf *config.FullConfig, logger *util.Logger ) *http.ServeMux {
	mux := http.NewServeMux()
	sc := &conf.ServerConfig

	// general user-related pages
	for uri, page := range sc.Pages {
		mux.HandleFunc( uri, func(w http.ResponseWriter, r *http.Request) {
			sendFile( page, sc.NotFoundPage, w )
		})
	}

	// capacity and preview of a carrier
	mux.HandleFunc("POST /api/info", func(w http.ResponseWriter, r *http.Request) {
		handleInfo( w, r, conf, logger )
	})

	// hide a message
	mux.HandleFunc("POST /api/encode", func(w http.ResponseWriter, r *http.Request) {
		handleEncode( w, r, conf, logger )
	})

	// reveal a message
	mux.HandleFunc("POST /api/decode", func(w http.ResponseWriter, r *http.Request) {
		handleDecode( w, r, conf, logger )
	})
	return mux
}

func RunApiServer( conf *config.FullConfig, logger *util.Logger ) error {
	mux := NewApiServer( conf, logger )
	logger.LogInfo( "Listening and serving at address " + conf.ServerConfig.Address )
	util.DebugPrintln( util.CyanColor + "Listening and serving at address "+ conf.ServerConfig.Address + util.ResetColor )
	return http.ListenAndServe( conf.ServerConfig.Address, mux )
}

func sendFile( filename, notFoundPage string, w http.ResponseWriter ) {
	htmlPage, err := os.ReadFile( filename )
	if err != nil {
		htmlPage, err = os.ReadFile( notFoundPage )
		w.WriteHeader( http.StatusNotFound )
		if err != nil {
			w.Write( []byte("Not found") )
		} else {
			w.Write( htmlPage )
		}
		return
	}
	switch {
	case strings.HasSuffix( filename, ".css" ):
		w.Header().Set("Content-Type", "text/css")
	case strings.HasSuffix( filename, ".js" ):
		w.Header().Set("Content-Type", "text/javascript")
	}
	w.Write( htmlPage )
}
