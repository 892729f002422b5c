package options

import (
	"github.com/spf13/cobra"
)

// AuthOptions captures credential flags for login and register.
type AuthOptions struct {
	Username string
	Email    string
	Password string
}

func AddAuthArgs(cmd *cobra.Command, o *AuthOptions) {
	cmd.Flags().StringVarP(&o.Username, "username", "u", "",
		"Account username.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Account password.")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
}

func AddEmailArg(cmd *cobra.Command, o *AuthOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Account email address.")
	_ = cmd.MarkFlagRequired("email")
}
