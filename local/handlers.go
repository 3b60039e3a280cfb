package local
import (
	"io"
	"fmt"
	"errors"
	"strings"
	"net/http"
	"encoding/json"
	"encoding/base64"

	"stegocrypt/util"
	"stegocrypt/config"
	"stegocrypt/stegano/img"
	"stegocrypt/stegano/lsb"
)

const (
	EncodedMessage = "Message successfully hidden in image! ✓"
	DecodedMessage = "Message extracted successfully! ✓"
	NotFoundMessage = "No hidden message found in this image (or wrong password)."
)

var (
	errNoImage = errors.New("No image provided")
)

func writeJsonResponse( w http.ResponseWriter, status int, v any ) {
	resp, err := json.Marshal( v )
	if err != nil {
		http.Error( w, "Internal Server Error", http.StatusInternalServerError )
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader( status )
	w.Write( resp )
}

func writeError( w http.ResponseWriter, status int, err error ) {
	writeJsonResponse( w, status, Response{ Success: false, Message: err.Error() } )
}

func dataURL( mime string, data []byte ) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString( data )
}

// readUpload returns the content and the client-side name of the "image" field.
func readUpload( w http.ResponseWriter, r *http.Request, sc *config.ServerConfiguration ) ([]byte, string, error) {
	r.Body = http.MaxBytesReader( w, r.Body, sc.MaxUploadSize )
	if err := r.ParseMultipartForm( sc.MaxUploadSize ); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As( err, &tooLarge ) {
			return nil, "", fmt.Errorf("Image is too large (limit is %d bytes)", sc.MaxUploadSize)
		}
		return nil, "", errNoImage
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, "", errNoImage
	}
	defer file.Close()

	data, err := io.ReadAll( file )
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}

func preview( data []byte, sc *config.SteganoConfig, logger *util.Logger ) string {
	thumb, err := img.Preview( data, sc.PreviewWidth, sc.PreviewHeight, sc.PreviewQuality )
	if err != nil {
		logger.LogWarning( "Failed to build preview: " + err.Error() )
		return ""
	}
	return dataURL( "image/jpeg", thumb )
}

func handleInfo( w http.ResponseWriter, r *http.Request, conf *config.FullConfig, logger *util.Logger ) {
	data, filename, err := readUpload( w, r, &conf.ServerConfig )
	if err != nil {
		writeError( w, http.StatusBadRequest, err )
		return
	}
	info, err := img.Inspect( data )
	if err != nil {
		logger.LogError( fmt.Errorf("[info] %s: %w", filename, err) )
		writeError( w, http.StatusBadRequest, err )
		return
	}
	util.DebugPrintf( "[info] %s: %dx%d %s\n", filename, info.Width, info.Height, info.Format )
	writeJsonResponse( w, http.StatusOK, InfoResponse{
		Success: true,
		Width: info.Width,
		Height: info.Height,
		Mode: info.Mode,
		CapacityChars: info.UsableChars,
		Preview: preview( data, &conf.StegConfig, logger ),
		Filename: filename,
	})
}

func handleEncode( w http.ResponseWriter, r *http.Request, conf *config.FullConfig, logger *util.Logger ) {
	data, filename, err := readUpload( w, r, &conf.ServerConfig )
	if err != nil {
		writeError( w, http.StatusBadRequest, err )
		return
	}
	message := r.FormValue("message")
	password := util.FixUnicode( r.FormValue("password") )
	if strings.TrimSpace( message ) == "" {
		writeError( w, http.StatusBadRequest, fmt.Errorf("Message cannot be empty") )
		return
	}

	encoded, report, err := img.Hide( data, []byte(message), password )
	if err != nil {
		if report == nil {
			// the upload is not an image we can read
			logger.LogError( fmt.Errorf("[encode] %s: %w", filename, err) )
			writeError( w, http.StatusBadRequest, err )
			return
		}
		logger.LogWarning( fmt.Sprintf( "[encode] %s: %s", filename, err.Error() ) )
		writeJsonResponse( w, http.StatusOK, EncodeResponse{
			Success: false,
			Message: err.Error(),
			Capacity: report.Capacity,
			Used: report.Used,
		})
		return
	}

	logger.LogInfo( fmt.Sprintf( "[encode] %s: %d of %d bytes used", filename, report.Used, report.Capacity ) )
	writeJsonResponse( w, http.StatusOK, EncodeResponse{
		Success: true,
		Message: EncodedMessage,
		Capacity: report.Capacity,
		Used: report.Used,
		StegoImage: dataURL( "image/" + report.Format, encoded ),
		Preview: preview( encoded, &conf.StegConfig, logger ),
		Filename: util.Stem( filename ) + "_stego." + report.Format,
	})
}

func handleDecode( w http.ResponseWriter, r *http.Request, conf *config.FullConfig, logger *util.Logger ) {
	data, filename, err := readUpload( w, r, &conf.ServerConfig )
	if err != nil {
		writeError( w, http.StatusBadRequest, err )
		return
	}
	password := util.FixUnicode( r.FormValue("password") )

	secret, err := img.Reveal( data, password )
	resp := DecodeResponse{
		Filename: filename,
	}
	switch {
	case errors.Is( err, lsb.ErrDelimiterNotFound ):
		logger.LogInfo( "[decode] " + filename + ": nothing found" )
		resp.Message = NotFoundMessage
	case err != nil:
		logger.LogError( fmt.Errorf("[decode] %s: %w", filename, err) )
		writeError( w, http.StatusBadRequest, err )
		return
	default:
		logger.LogInfo( fmt.Sprintf( "[decode] %s: %d bytes extracted", filename, len(secret) ) )
		text := util.BytesToText( secret )
		resp.Success = true
		resp.Message = DecodedMessage
		resp.Secret = &text
	}
	resp.Preview = preview( data, &conf.StegConfig, logger )
	writeJsonResponse( w, http.StatusOK, resp )
}
