package main
import (
	"os"
	"fmt"
	"errors"
	"strings"
	"path/filepath"

	"github.com/akamensky/argparse"
	"github.com/dustin/go-humanize"

	"stegocrypt/util"
	"stegocrypt/local"
	"stegocrypt/stegano/img"
	"stegocrypt/stegano/lsb"
)

var (
	errImageNotFound = errors.New("Image file not found.")
)

type EncodeArgs struct {
	image		*string
	message		*string
	output		*string
	password	*string
	askPassword	*bool
}

type DecodeArgs struct {
	image		*string
	password	*string
	askPassword	*bool
}

type ServeArgs struct {
	config		*string
	address		*string
}

func initEncodeCommand( parser *argparse.Parser ) (*argparse.Command, *EncodeArgs) {
	cmd := parser.NewCommand( "encode", "Hide a message inside an image" )
	return cmd, &EncodeArgs{
		image: cmd.String( "i", "image", &argparse.Options{ Required: true, Help: "Carrier image path" } ),
		message: cmd.String( "m", "message", &argparse.Options{ Required: true, Help: "Secret message to hide" } ),
		output: cmd.String( "o", "output", &argparse.Options{ Required: true, Help: "Output stego-image path (.png)" } ),
		password: cmd.String( "p", "password", &argparse.Options{ Help: "Optional password" } ),
		askPassword: cmd.Flag( "P", "ask-password", &argparse.Options{ Help: "Read the password from the terminal" } ),
	}
}

func initDecodeCommand( parser *argparse.Parser ) (*argparse.Command, *DecodeArgs) {
	cmd := parser.NewCommand( "decode", "Reveal a hidden message from an image" )
	return cmd, &DecodeArgs{
		image: cmd.String( "i", "image", &argparse.Options{ Required: true, Help: "Stego-image path" } ),
		password: cmd.String( "p", "password", &argparse.Options{ Help: "Optional password" } ),
		askPassword: cmd.Flag( "P", "ask-password", &argparse.Options{ Help: "Read the password from the terminal" } ),
	}
}

func initInfoCommand( parser *argparse.Parser ) (*argparse.Command, *string) {
	cmd := parser.NewCommand( "info", "Show image info and steganography capacity" )
	return cmd, cmd.String( "i", "image", &argparse.Options{ Required: true, Help: "Image path" } )
}

func initServeCommand( parser *argparse.Parser ) (*argparse.Command, *ServeArgs) {
	cmd := parser.NewCommand( "serve", "Run the local web API" )
	return cmd, &ServeArgs{
		config: cmd.String( "c", "config", &argparse.Options{ Default: ConfigFilename, Help: "YAML configuration file" } ),
		address: cmd.String( "a", "address", &argparse.Options{ Help: "Listen address, overrides the configuration" } ),
	}
}

func initGenconfCommand( parser *argparse.Parser ) (*argparse.Command, *string) {
	cmd := parser.NewCommand( "genconf", "Write the default configuration" )
	return cmd, cmd.String( "o", "output", &argparse.Options{ Default: ConfigFilename, Help: "Output file" } )
}

func initEditconfCommand( parser *argparse.Parser ) (*argparse.Command, *string) {
	cmd := parser.NewCommand( "editconf", "Edit the configuration with $" + util.TextEditorVariableName )
	return cmd, cmd.String( "c", "config", &argparse.Options{ Default: ConfigFilename, Help: "YAML configuration file" } )
}

func initReadlogCommand( parser *argparse.Parser ) (*argparse.Command, *string) {
	cmd := parser.NewCommand( "readlog", "Print the server log" )
	return cmd, cmd.String( "c", "config", &argparse.Options{ Default: ConfigFilename, Help: "YAML configuration file" } )
}

func getPassword( password *string, ask *bool, confirm bool ) (string, error) {
	if *ask {
		if *password != "" {
			return "", fmt.Errorf("--password and --ask-password can not be used together")
		}
		if confirm {
			return util.GetNewPasswd( "Password: " )
		}
		return util.GetPasswd( "Password: " )
	}
	return util.FixUnicode( *password ), nil
}

func encode( args *EncodeArgs ) error {
	password, err := getPassword( args.password, args.askPassword, true )
	if err != nil {
		return err
	}

	fmt.Printf( "\n[→] Encoding message into '%s' ...\n", *args.image )
	decoy, err := os.ReadFile( *args.image )
	if err != nil {
		return errImageNotFound
	}
	data, report, err := img.Hide( decoy, []byte(*args.message), password )
	if err != nil {
		return err
	}

	ext := strings.TrimPrefix( strings.ToLower( filepath.Ext( *args.output ) ), "." )
	if ext == "jpg" {
		ext = img.JPEG
	} else if ext == "tif" {
		ext = img.TIFF
	}
	if ext != report.Format {
		fmt.Fprintf( os.Stderr, "[!] '%s' is written as %s, other formats would destroy the message\n",
			*args.output, report.Format )
	}
	if err = os.WriteFile( *args.output, data, 0644 ); err != nil {
		return err
	}

	fmt.Printf( "[✓] %s\n", local.EncodedMessage )
	fmt.Printf( "    Output : %s\n", *args.output )
	fmt.Printf( "    Used   : %s chars  |  Capacity: %s chars\n",
		humanize.Comma( int64(report.Used) ), humanize.Comma( int64(report.Capacity) ) )
	return nil
}

func decode( args *DecodeArgs ) error {
	password, err := getPassword( args.password, args.askPassword, false )
	if err != nil {
		return err
	}

	fmt.Printf( "\n[→] Decoding message from '%s' ...\n", *args.image )
	data, err := os.ReadFile( *args.image )
	if err != nil {
		return errImageNotFound
	}
	secret, err := img.Reveal( data, password )
	if err != nil {
		if errors.Is( err, lsb.ErrDelimiterNotFound ) {
			return errors.New( local.NotFoundMessage )
		}
		return err
	}

	fmt.Printf( "[✓] %s\n", local.DecodedMessage )
	fmt.Println( "\n── Secret Message ─────────────────────────────────────" )
	fmt.Println( util.BytesToText( secret ) )
	fmt.Print( "───────────────────────────────────────────────────────\n\n" )
	return nil
}

func info( image *string ) error {
	data, err := os.ReadFile( *image )
	if err != nil {
		return errImageNotFound
	}
	inf, err := img.Inspect( data )
	if err != nil {
		return err
	}
	fmt.Printf( "\n[i] Image info for '%s':\n", *image )
	fmt.Printf( "    Dimensions : %d × %d px\n", inf.Width, inf.Height )
	fmt.Printf( "    Format     : %s\n", inf.Format )
	fmt.Printf( "    Mode       : %s\n", inf.Mode )
	fmt.Printf( "    Capacity   : ≈ %s characters (%s)\n",
		humanize.Comma( int64(inf.UsableChars) ), humanize.Bytes( uint64(inf.Capacity) ) )
	return nil
}

func serve( args *ServeArgs ) error {
	conf, err := loadConfig( *args.config )
	if err != nil {
		return err
	}
	if *args.address != "" {
		conf.ServerConfig.Address = *args.address
	}
	logger := util.NewLogger( &conf.Logger )
	fmt.Println( strings.Repeat( "═", 55 ) )
	fmt.Println( "  StegoCrypt Server" )
	fmt.Println( "  → Open:  http://" + conf.ServerConfig.Address )
	fmt.Println( "  → Stop:  Ctrl + C" )
	fmt.Println( strings.Repeat( "═", 55 ) )
	return local.RunApiServer( conf, logger )
}
