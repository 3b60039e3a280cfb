package main
import (
	"os"
	"fmt"

	"github.com/akamensky/argparse"

	"stegocrypt/util"
	"stegocrypt/config"
)

const (
	ConfigFilename = "stegocrypt.yaml"
)

func main() {
	parser := argparse.NewParser( "stegocrypt", "StegoCrypt: LSB steganography CLI" )
	debug := parser.Flag( "d", "debug", &argparse.Options{ Help: "Print debug messages" } )

	encodeCommand, encodeArgs := initEncodeCommand( parser )
	decodeCommand, decodeArgs := initDecodeCommand( parser )
	infoCommand, infoArgs := initInfoCommand( parser )
	serveCommand, serveArgs := initServeCommand( parser )
	genconfCommand, genconfOutput := initGenconfCommand( parser )
	editconfCommand, editconfFile := initEditconfCommand( parser )
	readlogCommand, readlogConfig := initReadlogCommand( parser )

	if err := parser.Parse( os.Args ); err != nil {
		fmt.Fprint( os.Stderr, parser.Usage( err ) )
		os.Exit(2)
	}
	util.DebugMode = *debug

	var err error
	switch {
	case encodeCommand.Happened():
		err = encode( encodeArgs )
	case decodeCommand.Happened():
		err = decode( decodeArgs )
	case infoCommand.Happened():
		err = info( infoArgs )
	case serveCommand.Happened():
		err = serve( serveArgs )
	case genconfCommand.Happened():
		err = config.SaveConfig( *genconfOutput, config.DefaultConfig() )
	case editconfCommand.Happened():
		err = util.EditConfig( *editconfFile, func( data []byte ) error {
			_, err := config.ParseConfig( data )
			return err
		})
	case readlogCommand.Happened():
		err = readLog( *readlogConfig )
	default:
		fmt.Print( parser.Usage( nil ) )
	}
	if err != nil {
		fatal( err )
	}
}

// a missing config file is not an error, defaults are used instead.
func loadConfig( filename string ) (*config.FullConfig, error) {
	conf, err := config.LoadConfig( filename )
	if os.IsNotExist( err ) {
		util.DebugPrintln( "[-] No configuration found at", filename, "using defaults" )
		return config.DefaultConfig(), nil
	}
	return conf, err
}

func readLog( configFile string ) error {
	conf, err := loadConfig( configFile )
	if err != nil {
		return err
	}
	if conf.Logger.Filename == "" {
		return fmt.Errorf("Logger writes to stderr, there is no log file to read")
	}
	return util.ReadLog( conf.Logger.Filename )
}

func fatal( args ...any ) {
	fmt.Fprint( os.Stderr, "[✗] " )
	fmt.Fprintln( os.Stderr, args... )
	os.Exit(1)
}
