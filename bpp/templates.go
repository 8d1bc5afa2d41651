// Copyright 2026 The Bash++ Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bpp

import "strings"

// The runtime template library: fixed shell snippets with
// %PLACEHOLDER% slots, substituted at code-generation time only — the
// emitted shell never sees a placeholder. Substitution is plain
// replace-all, grounded on the original C++ implementation's `replace_all` helper.

// Bash-compatibility floor: associative arrays and $BASHPID need Bash
// 4.0; `exec {var}<>` needs Bash 4.1.
const (
	MinBashVersionAssocArrays = "4.0"
	MinBashVersionSupershell  = "4.1"
)

const templateSupershell = `function bpp____initsupershell() {
	local bpp____supershellDirectory="/dev/shm/"
	if [[ ! -d "${bpp____supershellDirectory}" ]]; then
		bpp____supershellDirectory="${TMPDIR:-/tmp/}"
	fi
	local bpp____supershelltempfile="$(mktemp "${bpp____supershellDirectory}/XXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXX")"
	eval "exec {bpp____supershellFD__$BASHPID}<>\"$bpp____supershelltempfile\""
	rm "$bpp____supershelltempfile"
}
function bpp____supershell() {
	local __outputVar="$1" __command="$2" __supershellFD="bpp____supershellFD__$BASHPID" __temporaryStorage=""
	if [[ -z "${!__supershellFD}" ]]; then
		bpp____initsupershell
	else
		__temporaryStorage=$(< "/dev/fd/${!__supershellFD}")
	fi
	$__command 1>"/dev/fd/${!__supershellFD}" 2>/dev/null
	eval "$__outputVar=\$(< "/dev/fd/${!__supershellFD}")"
	echo "${__temporaryStorage}">"/dev/fd/${!__supershellFD}"
}
`

const templateRepeat = `function bpp____repeat() {
	return $1
}
`

const templateVTableLookup = `function bpp____vTable__lookup() {
	local __this="$1" __method="$2" __outputVar="$3"
	([[ -z "${__this}" ]] || [[ -z "${__method}" ]] || [[ -z "${__outputVar}" ]]) && >&2 echo "bpp: invalid vTable lookup" && exit 1
	while : ; do
		if ! eval "declare -p \"${__this}\"" &>/dev/null; then
			break
		fi
		[[ -z "${!__this}" ]] && break
		__this="${!__this}"
	done
	local __vTable="${__this}____vPointer"
	if ! eval "declare -p \"${__vTable}\"" &>/dev/null; then
		return 1
	fi
	local __result="${!__vTable}[\"${__method}\"]"
	[[ -z "${!__result}" ]] && >&2 echo "bpp: method '${__method}' not found in vTable for object '${__this}'" && return 1
	eval "${__outputVar}=\$__result"
}
`

const templateDynamicCast = `function bpp____dynamic__cast() {
	local __type="$1" __outputVar="$2" __this="$3"
	[[ -z "${__outputVar}" ]] && >&2 echo "bpp: invalid dynamic_cast" && exit 1
	eval "${__outputVar}=0"
	while : ; do
		if ! eval "declare -p \"${__this}\"" &>/dev/null; then
			break
		fi
		[[ -z "${!__this}" ]] && break
		__this="${!__this}"
	done
	local __vTable="${__this}____vPointer"
	if ! eval "declare -p \"${__vTable}\"" &>/dev/null; then
		return 1
	fi
	while [[ -n "${!__vTable}" ]] 2>/dev/null; do
		[[ "${!__vTable}" == "bpp__${__type}____vTable" ]] && eval "${__outputVar}=\"${__this}\"" && return 0
		__vTable="${!__vTable}[\"__parent__\"]"
	done
	return 1
}
`

const templateTypeof = `function bpp____typeof() {
	local __this="$1" __outputVar="$2"
	[[ -z "${__this}" ]] && >&2 echo "bpp: invalid type name request" && exit 1
	while : ; do
		if ! eval "declare -p \"${__this}\"" &>/dev/null; then
			break
		fi
		[[ -z "${!__this}" ]] && break
		__this="${!__this}"
	done
	local __vTable="${__this}____vPointer"
	if ! eval "declare -p \"${__vTable}\"" &>/dev/null; then
		return 1
	fi
	__vTable="${!__vTable}"
	local __typeName="${__vTable/bpp__/}"
	__typeName="${__typeName/____vTable/}"
	eval "${__outputVar}=\"${__typeName}\""
}
`

const templateThisPointerValidation = `	while : ; do
		if ! eval "declare -p \"${__this}\"" &>/dev/null; then
			break
		fi
		[[ -z "${!__this}" ]] && break
		__this="${!__this}"
	done
	local __vPointer="${__this}____vPointer"
	if [[ "${__this}" == "0" ]] || [[ -z "${!__vPointer}" ]]; then
		>&2 echo "bpp: attempted to call %CLASS%.%SIGNATURE% on a null object"
		return 1
	fi
`

const templateMethod = `function bpp__%CLASS%____%SIGNATURE%() {
	local __this="$1" __objectAddress="$1"
	shift 1
	%PARAMS%
%THIS_POINTER_VALIDATION%
%METHODBODY%
}
`

const templateNew = `function bpp__%CLASS%____new() {
	local __objectAddress="$1"
	declare -gA "${__objectAddress}____vPointer"
	eval "${__objectAddress}____vPointer=bpp__%CLASS%____vTable"
%ASSIGNMENTS%
}
`

const templateDelete = `function bpp__%CLASS%____delete() {
	local __objectAddress="$1"
%DELETIONS%
	unset "${__objectAddress}____vPointer"
}
`

const templateCopy = `function bpp__%CLASS%____copy() {
	local __copyFromAddress="$1" __copyToAddress="$2"
%COPIES%
}
`

const templateConstructor = `function bpp__%CLASS%____constructor() {
	local __this="$1" __objectAddress="$1"
	shift 1
%CONSTRUCTORBODY%
}
`

const templateDestructor = `function bpp__%CLASS%____destructor() {
	local __this="$1" __objectAddress="$1"
	shift 1
%DESTRUCTORBODY%
}
`

const templateToPrimitive = `function bpp__%CLASS%____toPrimitive__() {
	local __this="$1" __objectAddress="$1"
	echo "${__objectAddress}"
}
`

// substitute performs plain replace-all substitution of %KEY% markers.
// Kept as a tiny local helper (mirrors kati's own small string-utility
// functions in strutil.go) rather than reaching for text/template: these
// are flat string substitutions with no control flow, looping, or
// escaping rules beyond literal replacement.
func substitute(template string, kv ...string) string {
	if len(kv)%2 != 0 {
		panic("substitute: odd number of key/value arguments")
	}
	out := template
	for i := 0; i+1 < len(kv); i += 2 {
		out = strings.ReplaceAll(out, "%"+kv[i]+"%", kv[i+1])
	}
	return out
}

// runtimePrelude returns the fixed shell functions emitted exactly once
// at program start, in a stable order so that
// idempotent recompilation produces byte-
// identical output.
func runtimePrelude() string {
	var b strings.Builder
	b.WriteString(templateSupershell)
	b.WriteString(templateRepeat)
	b.WriteString(templateVTableLookup)
	b.WriteString(templateDynamicCast)
	b.WriteString(templateTypeof)
	return b.String()
}
