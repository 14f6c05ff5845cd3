package sqlinline

const QGetProject = `--sql e43a2a1c-3a06-4c9d-a710-b3ed33be51ef
select id, organization_id, title, description, image_path, target_minor, collected_minor, status, position
from projects
where id = $1::uuid;
`

const QListProjectStages = `--sql ac7e5709-0f1f-4edf-ac01-d4593514be2d
select id, project_id, title, description, image_path, target_minor, collected_minor, status, position
from project_stages
where project_id = $1::uuid
order by position asc;
`
