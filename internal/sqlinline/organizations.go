package sqlinline

const QGetOrganization = `--sql b24c3c54-e6d3-46bb-82df-f78dd842f03d
select id, name, logo_path, is_legacy_migrated, needs_target_minor, needs_collected_minor, timezone
from organizations
where id = $1::uuid;
`

const QGetOrganizationTerminology = `--sql 53fea890-0dbe-4b1f-8989-78203d242f09
select org_singular, org_genitive, action_support, member_singular, member_plural
from organization_terminology
where organization_id = $1::uuid;
`
