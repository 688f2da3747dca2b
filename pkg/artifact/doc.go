/*
Package artifact manages the on-disk layout of application bundles.

Each instance owns one directory under the agent's node root:

	<base>/<instanceId>/pkg.zip   the downloaded archive
	<base>/<instanceId>/app/      its extracted contents

Both steps are idempotent and survive agent restarts: an existing pkg.zip is
never re-downloaded, and the presence of app/start.sh suppresses
re-extraction. Extraction happens in-process with archive/zip rather than by
shelling out to unzip.
*/
package artifact
