package repository

import "github.com/jhoicas/Ordenes-api/internal/domain/entity"

// ProjectRepository define el puerto de consulta de proyectos (maestro del ERP).
type ProjectRepository interface {
	GetByID(id string) (*entity.Project, error)
	List(limit, offset int) ([]*entity.Project, error)
}
