package validators

import (
	"fmt"
	"strconv"
)

// Message keys that are not rule names.
const (
	MsgRequired  = "required"
	MsgMin       = "min"
	MsgMinString = "min-string"
	MsgMax       = "max"
	MsgMaxString = "max-string"
	MsgCompare   = "compare"
	MsgUnique    = "unique"
)

// messages is the fixed catalog. The first %s is always a field label;
// the second, where present, is a bound or a second label.
var messages = map[string]string{
	MsgRequired:  "Das Feld %s ist ein Pflichtfeld.",
	MsgMin:       "Das Feld %s muss mindestens %s sein.",
	MsgMinString: "Das Feld %s muss mindestens %s Zeichen lang sein.",
	MsgMax:       "Das Feld %s darf höchstens %s sein.",
	MsgMaxString: "Das Feld %s darf höchstens %s Zeichen lang sein.",
	MsgCompare:   "Die Felder %s und %s stimmen nicht überein.",
	MsgUnique:    "Der Wert im Feld %s ist bereits vergeben.",

	RuleLetters:      "Das Feld %s darf nur Buchstaben und Leerzeichen enthalten.",
	RuleText:         "Das Feld %s enthält ungültige Zeichen.",
	RuleTextNum:      "Das Feld %s darf nur Buchstaben, Zahlen und Satzzeichen enthalten.",
	RuleAlphanumeric: "Das Feld %s darf nur Buchstaben und Zahlen enthalten.",
	RuleCheckbox:     "Das Feld %s muss angekreuzt werden.",
	RuleNumeric:      "Das Feld %s muss eine Zahl sein.",
	RuleInt:          "Das Feld %s muss eine ganze Zahl sein.",
	RuleFloat:        "Das Feld %s muss eine Dezimalzahl sein.",
}

// render formats the template stored under key.
func render(key string, args ...any) string {
	return fmt.Sprintf(messages[key], args...)
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
