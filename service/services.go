// service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dev-mohitbeniwal/backoffice/audit"
	"github.com/dev-mohitbeniwal/backoffice/dao"
	pdp_dao "github.com/dev-mohitbeniwal/backoffice/pdp/dao"
	"github.com/dev-mohitbeniwal/backoffice/pdp/engine"
	"github.com/dev-mohitbeniwal/backoffice/util"
)

type Services struct {
	Auth          IAuthService
	User          IUserService
	Group         IGroupService
	Role          IRoleService
	Permission    IPermissionService
	ActionHistory IActionHistoryService
	Gate          *engine.Gate
}

// InitializeServices builds every service over db. neo4jDriver may be nil.
func InitializeServices(
	db *mongo.Database,
	neo4jDriver neo4j.DriverWithContext,
	auditService audit.Service,
	authCfg AuthConfig,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	userDAO := dao.NewUserDAO(db, auditService)
	groupDAO := dao.NewGroupDAO(db, auditService)
	roleDAO := dao.NewRoleDAO(db, auditService)
	permissionDAO := pdp_dao.NewPermissionRetrievalDAO(db)

	var groupGraph GroupGraph
	if neo4jDriver != nil {
		groupGraph = dao.NewGroupGraphDAO(neo4jDriver)
	}

	permissionService := NewPermissionService(permissionDAO)
	gate := engine.NewGate(engine.NewPermissionEvaluator(), permissionService)

	services := &Services{
		Auth:          NewAuthService(userDAO, cacheService, notificationSvc, auditService, validationUtil, authCfg),
		User:          NewUserService(userDAO, validationUtil, notificationSvc, eventBus),
		Group:         NewGroupService(groupDAO, groupGraph, roleDAO, userDAO, gate, validationUtil, notificationSvc, eventBus),
		Role:          NewRoleService(roleDAO, validationUtil, notificationSvc),
		Permission:    permissionService,
		ActionHistory: NewActionHistoryService(auditService),
		Gate:          gate,
	}

	return services, nil
}
