package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ConfigFlag string

func main() {
	rootCmd := &cobra.Command{
		Use:   "tex3ds",
		Short: "Tex3DS texture container tools",
	}
	rootCmd.PersistentFlags().StringVarP(&ConfigFlag, "config", "c", "", "Path to the config directory")

	unpackCmd.Flags().Int64Var(&SizeFlag, "size", 0, "Expected output size; 0 takes the size from the payload header")
	unpackCmd.Flags().BoolVar(&StrictFlag, "strict", false, "With --size, fail when the declared size exceeds it")
	infoCmd.Flags().BoolVar(&StrictFlag, "strict", false, "Fail when the payload declares more data than the texture holds")

	rootCmd.AddCommand(unpackCmd)
	rootCmd.AddCommand(infoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
