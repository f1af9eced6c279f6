package help

import (
	"os"

	"github.com/lnashier/wordsplit"
)

// Draw generates a DOT description of the split task tree and saves it to the specified path.
func Draw(root *wordsplit.Node, name string) error {
	data, err := wordsplit.DOT(root)
	if err != nil {
		return err
	}
	return os.WriteFile(name, data, os.FileMode(0644))
}
