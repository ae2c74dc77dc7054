package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmallet/cv-builder/internal/secrets"
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage encrypted credentials",
	Long:  `Store, inspect and remove credentials kept encrypted on disk, such as the API key used by optional integrations.`,
}

var secretSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Store a credential",
	Args:  cobra.ExactArgs(1),
	RunE:  runSecretSet,
}

var secretRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a credential",
	Args:  cobra.ExactArgs(1),
	RunE:  runSecretRemove,
}

var secretStatusCmd = &cobra.Command{
	Use:   "status <name>",
	Short: "Check whether a credential is stored",
	Args:  cobra.ExactArgs(1),
	RunE:  runSecretStatus,
}

func init() {
	secretCmd.AddCommand(secretSetCmd, secretRemoveCmd, secretStatusCmd)
	rootCmd.AddCommand(secretCmd)
}

func secretStore() (*secrets.Store, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, err
	}
	dir := cfg.Secrets
	if dir == "" {
		dir, err = secrets.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	return secrets.NewStore(dir), nil
}

func runSecretSet(_ *cobra.Command, args []string) error {
	store, err := secretStore()
	if err != nil {
		return err
	}

	fmt.Printf("Value for %s: ", args[0])
	reader := bufio.NewReader(os.Stdin)
	value, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	value = strings.TrimRight(value, "\r\n")
	if value == "" {
		return fmt.Errorf("empty value")
	}

	if err := store.Set(args[0], value); err != nil {
		return err
	}
	fmt.Printf("stored %s\n", args[0])
	return nil
}

func runSecretRemove(_ *cobra.Command, args []string) error {
	store, err := secretStore()
	if err != nil {
		return err
	}
	if err := store.Remove(args[0]); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", args[0])
	return nil
}

func runSecretStatus(_ *cobra.Command, args []string) error {
	store, err := secretStore()
	if err != nil {
		return err
	}
	has, err := store.Has(args[0])
	if err != nil {
		return err
	}
	if has {
		fmt.Printf("%s: stored\n", args[0])
	} else {
		fmt.Printf("%s: not stored\n", args[0])
	}
	return nil
}
