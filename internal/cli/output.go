package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// printJSON writes v as indented json to the command's stdout
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// messageOut is the confirmation shape of commands with no data to return
type messageOut struct {
	Message string `json:"message"`
}
