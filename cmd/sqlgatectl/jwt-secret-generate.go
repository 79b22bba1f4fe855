package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
)

// jwtSecretGenerateCmd represents the jwt-secret > generate command
var jwtSecretGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a token signing secret",
	Long: `
Generate a token signing secret

Use this command to generate a new Base64-encoded 256 bit secret. Once
generated, this secret should be placed into the environment of the gateway
server. It will be used to sign and verify every access token.

Example:

$ export SQLGATE_JWT_SECRET="$(sqlgatectl jwt-secret generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		bytes := make([]byte, 32)
		_, _ = rand.Read(bytes)
		fmt.Printf("%s", base64.StdEncoding.Strict().EncodeToString(bytes))
	},
}

func init() {
	jwtSecretCmd.AddCommand(jwtSecretGenerateCmd)
}
