// main is the entry point for the stargaze CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/stargaze/cmd"
	"github.com/huangsam/stargaze/internal/starstore"
)

func main() {
	cmd.SetStoreManager(starstore.Manager)

	err := cmd.Execute()
	starstore.CloseStores()
	if err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}
