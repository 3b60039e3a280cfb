package util
import (
	"os"
	"fmt"
	"bufio"
	"strings"
	"golang.org/x/term"
)

// just a wrapper for term...
// when stdin is not a terminal the first line is used as the password.
func GetPasswd( prompt string ) (string, error) {
	fd := int( os.Stdin.Fd() )
	if term.IsTerminal( fd ) == false {
		line, err := bufio.NewReader( os.Stdin ).ReadString( '\n' )
		if err != nil && line == "" {
			return "", err
		}
		return FixUnicode( strings.TrimRight( line, "\r\n" ) ), nil
	}
	fmt.Fprint( os.Stderr, prompt )
	bytepw, err := term.ReadPassword( fd )
	fmt.Fprintln( os.Stderr )
	if err != nil {
		return "", err
	}
	return FixUnicode( string(bytepw) ), nil
}

// asks twice on a terminal, used before hiding a message.
func GetNewPasswd( prompt string ) (string, error) {
	pw, err := GetPasswd( prompt )
	if err != nil || term.IsTerminal( int( os.Stdin.Fd() ) ) == false {
		return pw, err
	}
	again, err := GetPasswd( "Repeat password: " )
	if err != nil {
		return "", err
	}
	if pw != again {
		return "", fmt.Errorf("Passwords do not match")
	}
	return pw, nil
}
