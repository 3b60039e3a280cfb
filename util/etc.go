package util
import (
	"strings"
	"unicode/utf8"
	"golang.org/x/text/unicode/norm"
)

// composed and decomposed forms of the same password must give the same key.
func FixUnicode( in string ) string {
	return norm.NFC.String( in )
}

/*
 * BytesToText renders recovered bytes. valid UTF-8 is kept as is, anything
 * else is read as Latin-1 so a wrong password still shows something.
 */
func BytesToText( data []byte ) string {
	if utf8.Valid( data ) {
		return string(data)
	}
	var sb strings.Builder
	sb.Grow( len(data) * 2 )
	for _, b := range data {
		sb.WriteRune( rune(b) )
	}
	return sb.String()
}

func Stem( filename string ) string {
	if i := strings.LastIndexAny( filename, "/\\" ); i >= 0 {
		filename = filename[i+1:]
	}
	if i := strings.LastIndex( filename, "." ); i > 0 {
		return filename[:i]
	}
	return filename
}
