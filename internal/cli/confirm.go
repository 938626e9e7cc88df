package cli

import (
	"github.com/AlecAivazis/survey/v2"
)

// confirm asks a destructive-action question on the terminal. Defaults to no.
func confirm(message string) (bool, error) {
	ok := false
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: false}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
