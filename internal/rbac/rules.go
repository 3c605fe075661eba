package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"learner": {
		"assessment:view",
		"attempt:create",
		"attempt:save",
		"attempt:submit",
		"attempt:view-own",
		"cohort:view-own",
		"user:change_password",
	},
	"author": {
		"item:*",
		"assessment:*",
		"attempt:view-all",
		"attempt:grade",
		"cohort:*",
		"analytics:view",
		"users:bulk_upsert",
		"users:list",
		"assets:write",
	},
	"admin": {
		"*", // everything
	},
}
