package services

import (
	"strings"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SearchQuery holds the optional package search inputs. Blank means absent.
type SearchQuery struct {
	Nombre   string
	Telefono string
	Codigo   string
}

// SearchQueryFromBody reads nombre, telefono and codigo from a search body
func SearchQueryFromBody(body utils.Body) SearchQuery {
	get := func(name string) string {
		if v := utils.FirstString(body, utils.Aliases{name}); v != nil {
			return *v
		}
		return ""
	}
	return SearchQuery{Nombre: get("nombre"), Telefono: get("telefono"), Codigo: get("codigo")}
}

func (q SearchQuery) normalized() SearchQuery {
	return SearchQuery{
		Nombre:   strings.TrimSpace(q.Nombre),
		Telefono: strings.TrimSpace(q.Telefono),
		Codigo:   strings.TrimSpace(q.Codigo),
	}
}

// SearchStrategy is one candidate package lookup
type SearchStrategy struct {
	Name  string
	Scope func(db *gorm.DB) *gorm.DB
}

func byCode(code string) SearchStrategy {
	return SearchStrategy{Name: "codigo", Scope: func(db *gorm.DB) *gorm.DB {
		return db.Where("codigo_seguimiento = ?", code)
	}}
}

func byPhone(phone string) SearchStrategy {
	return SearchStrategy{Name: "telefono", Scope: func(db *gorm.DB) *gorm.DB {
		return db.Where("telefono = ?", phone)
	}}
}

func byName(name string) SearchStrategy {
	return SearchStrategy{Name: "nombre", Scope: nameScope(name)}
}

func byNameAndPhone(name, phone string) SearchStrategy {
	return SearchStrategy{Name: "nombre+telefono", Scope: func(db *gorm.DB) *gorm.DB {
		return nameScope(name)(db).Where("telefono = ?", phone)
	}}
}

func nameScope(name string) func(db *gorm.DB) *gorm.DB {
	pattern := utils.ContainsPattern(name)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(nombre_cliente) LIKE LOWER(?) ESCAPE '"+utils.LikeEscape+"'", pattern)
	}
}

// PlanSearch returns the lookups to try for q, in order. Only the combined
// name+phone search has a second candidate: the phone alone.
func PlanSearch(q SearchQuery) ([]SearchStrategy, error) {
	q = q.normalized()
	switch {
	case q.Codigo != "":
		return []SearchStrategy{byCode(q.Codigo)}, nil
	case q.Nombre != "" && q.Telefono != "":
		return []SearchStrategy{byNameAndPhone(q.Nombre, q.Telefono), byPhone(q.Telefono)}, nil
	case q.Nombre != "":
		return []SearchStrategy{byName(q.Nombre)}, nil
	case q.Telefono != "":
		return []SearchStrategy{byPhone(q.Telefono)}, nil
	default:
		return nil, ValidationError("Se requiere nombre, telefono o codigo para buscar")
	}
}

// SearchPackages runs the planned lookups until one returns rows
func (s *PackageService) SearchPackages(q SearchQuery) ([]models.PackageModel, error) {
	strategies, err := PlanSearch(q)
	if err != nil {
		return nil, err
	}

	packages := []models.PackageModel{}
	for _, strategy := range strategies {
		packages = []models.PackageModel{}
		err := strategy.Scope(s.db.Model(&models.PackageModel{})).
			Order("id DESC").
			Find(&packages).Error
		if err != nil {
			return nil, StorageError("error buscando paquetes", err)
		}
		if len(packages) > 0 {
			return packages, nil
		}
		s.log.Debug("search strategy returned no rows", zap.String("strategy", strategy.Name))
	}
	return packages, nil
}
