package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/loxinchi/NEO-project/internal/model"
	"github.com/spf13/cobra"
)

// inspectResult is the JSON form of an inspected NEO.
type inspectResult struct {
	model.SerializedNEO
	FullName   string                     `json:"full_name"`
	Approaches []model.SerializedApproach `json:"approaches,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Look up one NEO by designation or name",
		Run:   runInspect,
	}

	cmd.Flags().StringP("pdes", "p", "", "Primary designation")
	cmd.Flags().StringP("name", "n", "", "IAU name")
	cmd.Flags().BoolP("approaches", "a", false, "Include the NEO's close approaches")
	cmd.MarkFlagsOneRequired("pdes", "name")
	cmd.MarkFlagsMutuallyExclusive("pdes", "name")

	RootCmd.AddCommand(cmd)
}

func runInspect(cmd *cobra.Command, args []string) {
	pdes, _ := cmd.Flags().GetString("pdes")
	name, _ := cmd.Flags().GetString("name")
	withApproaches, _ := cmd.Flags().GetBool("approaches")

	cfg, err := loadConfig()
	if err != nil {
		exitErr("config", err)
	}
	db, err := openDatabase(cmd.Context(), cfg)
	if err != nil {
		exitErr("load", err)
	}

	neo, ok := db.GetByDesignation(pdes)
	if name != "" {
		neo, ok = db.GetByName(name)
	}
	if !ok {
		exitErr("inspect", errors.New("no matching NEO exists in the database"))
	}

	out := cmd.OutOrStdout()
	if textOutput() {
		fmt.Fprintln(out, neo)
		if withApproaches {
			for _, ca := range neo.Approaches() {
				fmt.Fprintf(out, "- %s\n", ca)
			}
		}
		return
	}

	res := inspectResult{SerializedNEO: neo.Serialize(), FullName: neo.FullName()}
	if withApproaches {
		for _, ca := range neo.Approaches() {
			res.Approaches = append(res.Approaches, ca.Serialize())
		}
	}
	b, _ := json.MarshalIndent(res, "", "  ")
	fmt.Fprintln(out, string(b))
}
