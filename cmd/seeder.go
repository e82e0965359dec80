package cmd

import (
	"fmt"
	"log"

	"github.com/frahmantamala/cashbook-management/internal/user"
	"github.com/spf13/cobra"
)

var (
	seedFirstName  string
	seedLastName   string
	seedNationalID string
	seedUsername   string
	seedPassword   string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the first master user",
	Long:  `Ensure a master user exists. The system is unusable until at least one master user is registered; this command creates one when none is present.`,
	Run: func(cmd *cobra.Command, args []string) {
		deps, err := initializeDependencies()
		if err != nil {
			log.Fatalf("failed to initialize dependencies: %v", err)
		}
		defer deps.Close()

		created, err := deps.Users.EnsureMaster(user.RegisterDTO{
			FirstName:  seedFirstName,
			LastName:   seedLastName,
			NationalID: seedNationalID,
			Username:   seedUsername,
			Password:   seedPassword,
		})
		if err != nil {
			log.Fatalf("failed to seed master user: %v", err)
		}

		if created == nil {
			fmt.Println("master user already exists, nothing to do")
			return
		}
		fmt.Printf("Seeded master user: %s\n", created.Username)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFirstName, "first-name", "", "master user first name")
	seedCmd.Flags().StringVar(&seedLastName, "last-name", "", "master user last name")
	seedCmd.Flags().StringVar(&seedNationalID, "national-id", "", "master user national id")
	seedCmd.Flags().StringVar(&seedUsername, "username", "", "master username")
	seedCmd.Flags().StringVar(&seedPassword, "password", "", "master password (min 4 characters)")
}
