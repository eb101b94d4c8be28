package cmd

import (
	"fmt"

	"github.com/pranav244872/cvreview/token"
	"github.com/pranav244872/cvreview/util"
	"github.com/spf13/cobra"
)

var (
	tokenHash     string
	tokenUsername string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an admin token, or hash an admin password",
	Example: `  cvreview token              # print a token for ADMIN_USERNAME
  cvreview token --hash 's3cret' # print ADMIN_PASSWORD_HASH for app.env`,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenHash, "hash", "", "print the bcrypt hash of this password instead")
	tokenCmd.Flags().StringVar(&tokenUsername, "username", "", "token subject (defaults to ADMIN_USERNAME)")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if tokenHash != "" {
		hash, err := util.HashPassword(tokenHash)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, hash)
		return nil
	}

	maker, err := token.NewJWTMaker(cfg.TokenSymmetricKey)
	if err != nil {
		return fmt.Errorf("could not create token maker: %w", err)
	}

	username := tokenUsername
	if username == "" {
		username = cfg.AdminUsername
	}
	accessToken, err := maker.CreateToken(username, token.RoleAdmin, cfg.AccessTokenDuration)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, accessToken)
	return nil
}
