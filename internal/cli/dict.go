package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tiagobortoncello/assistente-rt/internal/thesaurus"
)

// dictCmd represents the dict command
var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Inspeciona o vocabulário controlado",
}

var dictCheckCmd = &cobra.Command{
	Use:   "check <arquivo>",
	Short: "Valida o arquivo de vocabulário e procura ciclos na hierarquia",
	Long: `Check carrega o vocabulário, informa quantos termos e relações foram
lidos e procura ciclos na hierarquia genérico→específico. Um ciclo faz
o filtro de especificidade desistir da poda em tempo de uso; é melhor
descobrir isso na implantação do que na tela de um usuário.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDict(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Termos:   %d\n", dict.Len())
		fmt.Printf("Relações: %d\n", dict.EdgeCount())

		cycles := dict.Cycles()
		if len(cycles) == 0 {
			fmt.Println("Hierarquia consistente, nenhum ciclo encontrado.")
			return nil
		}

		fmt.Printf("Ciclos detectados a partir de %d termos:\n", len(cycles))
		for _, term := range cycles {
			fmt.Printf("  - %s\n", term)
		}
		return errors.New("hierarquia malformada")
	},
}

var dictShowCmd = &cobra.Command{
	Use:   "show <arquivo>",
	Short: "Lista os termos do vocabulário com suas relações",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDict(args[0])
		if err != nil {
			return err
		}

		for _, term := range dict.Terms() {
			fmt.Println(term)
			if p := dict.ParentOf(term); p != "" {
				fmt.Printf("  genérico: %s\n", p)
			}
			for _, c := range dict.ChildrenOf(term) {
				fmt.Printf("  específico: %s\n", c)
			}
		}
		return nil
	},
}

func loadDict(path string) (*thesaurus.Dictionary, error) {
	delimiter := viper.GetString("dictionary.delimiter")
	if delimiter == "" {
		delimiter = ">"
	}

	return thesaurus.LoadFile(path, thesaurus.LoaderOptions{
		Delimiter:   delimiter,
		Orientation: thesaurus.ParseOrientation(viper.GetString("dictionary.orientation")),
	})
}

func init() {
	rootCmd.AddCommand(dictCmd)
	dictCmd.AddCommand(dictCheckCmd)
	dictCmd.AddCommand(dictShowCmd)
}
