package util
import (
	"os"
	"fmt"
	"os/exec"
	"strings"
)

const (
	TextEditor = "/usr/bin/vi"
	TextEditorVariableName = "STEGOCRYPT_EDITOR"
)

/*
 * user-related functions: edit the configuration, read the log.
 */
func EditConfig( conf string, validate func( []byte ) error ) error {
	te := TextEditor	// setup default text editor
	environments := os.Environ()
	for _, variable := range environments {
		parts := strings.SplitN( variable, "=", 2 )
		if len(parts) == 2 && parts[0] == TextEditorVariableName && parts[1] != "" {
			te = parts[1]
			break
		}
	}

	orig, err := os.ReadFile( conf )
	if err != nil {
		return fmt.Errorf("Failed to read configuration: %s", err.Error() )
	}

	cmd := exec.Command( te, conf )
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err = cmd.Run(); err != nil {
		return fmt.Errorf("Failed to run text editor: %s", err.Error())
	}

	edited, err := os.ReadFile( conf )
	if err != nil {
		return fmt.Errorf("Failed to read edited configuration: %s", err.Error())
	}
	if validate != nil {
		if err = validate( edited ); err != nil {
			// put the old version back
			os.WriteFile( conf, orig, 0600 )
			return fmt.Errorf("Invalid configuration, changes reverted: %s", err.Error())
		}
	}
	return nil
}

func ReadLog( log string ) error {
	data, err := os.ReadFile( log )
	if err != nil {
		return err
	}
	fmt.Printf( "%s", data )
	return nil
}
