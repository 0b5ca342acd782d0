package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nepem-ufsc/nepemcert/internal/model"
)

type PlaceholderRepository interface {
	Load() (*model.PlaceholderParameters, error)
	Save(params *model.PlaceholderParameters) error
}

type placeholderRepository struct {
	paramsFile string
}

// NewPlaceholderRepository cria o repositório do arquivo de parâmetros.
// O arquivo é criado com a estrutura padrão na primeira carga.
func NewPlaceholderRepository(paramsFile string) PlaceholderRepository {
	return &placeholderRepository{paramsFile: paramsFile}
}

func (r *placeholderRepository) Load() (*model.PlaceholderParameters, error) {
	data, err := os.ReadFile(r.paramsFile)
	if err != nil {
		if os.IsNotExist(err) {
			params := model.NewPlaceholderParameters()
			if err := r.Save(params); err != nil {
				return nil, err
			}
			return params, nil
		}
		return nil, err
	}

	params := model.NewPlaceholderParameters()
	if err := json.Unmarshal(data, params); err != nil {
		return nil, fmt.Errorf("invalid parameters file: %w", err)
	}
	if params.Defaults == nil {
		params.Defaults = map[string]string{}
	}
	if params.Institutional == nil {
		params.Institutional = map[string]string{}
	}
	if params.Themes == nil {
		params.Themes = map[string]map[string]string{}
	}
	return params, nil
}

func (r *placeholderRepository) Save(params *model.PlaceholderParameters) error {
	if dir := filepath.Dir(r.paramsFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(params, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.paramsFile, data, 0o644)
}
