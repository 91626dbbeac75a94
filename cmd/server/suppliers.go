package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"morafo/entities"
	feedRepoImp "morafo/pkg/feed/repositoryImp"
)

var (
	supplierDistrict string
	supplierFile     string
)

var suppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "List feed suppliers",
	Long: `List feed suppliers from the built-in table or a supplier file.

Examples:
  morafo suppliers --district Leribe
  morafo suppliers --file suppliers.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := feedRepoImp.NewDirectory(feedRepoImp.Builtin())
		if supplierFile != "" {
			list, err := feedRepoImp.LoadFile(supplierFile)
			if err != nil {
				return err
			}
			dir.Replace(list)
		}
		list := dir.All()
		if supplierDistrict != "" {
			if !entities.IsDistrict(supplierDistrict) {
				return fmt.Errorf("unknown district %q (one of: %s)", supplierDistrict, strings.Join(entities.Districts, ", "))
			}
			list = dir.ByDistrict(supplierDistrict)
		}
		if len(list) == 0 {
			fmt.Println("No suppliers found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDISTRICT\tLOCATION\tBRANDS\tPHONE")
		for _, s := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.Name, s.District, s.Location, strings.Join(s.Brands, ", "), s.Phone)
		}
		return w.Flush()
	},
}

func init() {
	suppliersCmd.Flags().StringVar(&supplierDistrict, "district", "", "only list suppliers in this district")
	suppliersCmd.Flags().StringVar(&supplierFile, "file", os.Getenv("SUPPLIERS_FILE"), "supplier table (.csv, .xlsx or .yaml)")
}
