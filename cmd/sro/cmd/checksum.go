package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/sro/foundation/core/error"
	"github.com/msto63/sro/foundation/utils/validationx"
)

var checksumCmd = &cobra.Command{
	Use:   "checksum <cpf|cnpj> <wert>",
	Short: "Prüft die Prüfziffern einer CPF oder CNPJ",
	Long: `Prüft die Modulo-11-Prüfziffern einer CPF (11 Stellen) oder
CNPJ (14 Stellen). Punkte, Schrägstriche und Bindestriche werden ignoriert.

Exit-Status: 0 gültig, 1 ungültig, 2 Fehler.

Beispiele:
  sro checksum cpf 529.982.247-25
  sro checksum cnpj 11.222.333/0001-81`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"cpf", "cnpj"},
	RunE:      runChecksum,
}

func init() {
	rootCmd.AddCommand(checksumCmd)
}

func runChecksum(cmd *cobra.Command, args []string) error {
	kind := strings.ToLower(args[0])
	digits := validationx.StripFormatting(args[1])

	var valid bool
	switch kind {
	case "cpf":
		valid = validationx.IsValidCPF(digits)
	case "cnpj":
		valid = validationx.IsValidCNPJ(digits)
	default:
		return mdwerror.Newf("unknown document type %q, expected cpf or cnpj", args[0]).
			WithCode(mdwerror.CodeInvalidInput)
	}

	if !valid {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", strings.ToUpper(kind), digits, rejectedStyle.Render("ungültig"))
		return errRejected
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", strings.ToUpper(kind), digits, okStyle.Render("gültig"))
	return nil
}
