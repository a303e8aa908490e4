package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dashmock/internal/mock"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table in match order",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := mock.NewDispatcher(mock.Options{})
			for i, name := range d.RouteNames() {
				fmt.Printf("%2d  %s\n", i+1, name)
			}
			return nil
		},
	}
}
