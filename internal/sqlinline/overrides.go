package sqlinline

// Goal settings per scope level. Both columns are nullable: null means "not
// configured at this level" and resolution falls through the chain.

const QSiteGoalSettings = `--sql 6034bae5-0b1d-41aa-9b40-a950a690f314
select monthly_goal_minor, monthly_collected_override_minor
from site_settings
where site_id = $1::uuid;
`

const QProjectGoalSettings = `--sql 0d43a1d4-6725-4f5a-859b-042492ebbf9b
select monthly_goal_minor, monthly_collected_override_minor
from project_settings
where project_id = $1::uuid;
`

const QOrganizationGoalSettings = `--sql fabcd82c-207c-47f8-9171-3791c423410d
select monthly_goal_minor, monthly_collected_override_minor
from organization_settings
where organization_id = $1::uuid;
`

const QSiteRequisites = `--sql 39065aaa-41b3-4431-be7d-d074469aa769
select recipient_name, account_number, bank_name, bic, corr_account, inn, kpp
from site_requisites
where site_id = $1::uuid;
`

const QProjectRequisites = `--sql 4fc7a1c2-47e7-4515-a28c-61828e48f17f
select recipient_name, account_number, bank_name, bic, corr_account, inn, kpp
from project_requisites
where project_id = $1::uuid;
`

const QOrganizationRequisites = `--sql b7b58746-1a29-43ac-9345-8acdc73d8476
select recipient_name, account_number, bank_name, bic, corr_account, inn, kpp
from organization_requisites
where organization_id = $1::uuid;
`
