package models

// MigrateModels is the list of tables created by AutoMigrate, parents first.
var MigrateModels = []interface{}{
	&Issue{},
	&CommunityNote{},
	&IssueUpvote{},
}
