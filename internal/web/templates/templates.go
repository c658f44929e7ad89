package templates

const tmplLayout = `
{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}} · pacetrack</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'JetBrains Mono',monospace,sans-serif;background:#0d1117;color:#c9d1d9;font-size:13px;line-height:1.5}
a{color:#58a6ff;text-decoration:none}
a:hover{text-decoration:underline}
nav{background:#161b22;border-bottom:1px solid #30363d;padding:8px 16px;display:flex;gap:10px;align-items:center;flex-wrap:wrap}
nav .brand{color:#f0f6fc;font-weight:700;font-size:15px;margin-right:8px}
nav a{color:#8b949e;padding:4px 8px;border-radius:4px}
nav a:hover{color:#c9d1d9;background:#21262d;text-decoration:none}
nav a.active{background:#1f6feb;color:#fff}
.nav-right{display:flex;gap:4px;margin-left:auto;align-items:center}
.nav-right a{font-size:11px;padding:2px 8px;border:1px solid #30363d;border-radius:4px}
.nav-right button{font-size:11px;padding:2px 8px;background:#21262d;border:1px solid #30363d;border-radius:4px;color:#8b949e;cursor:pointer;font-family:inherit}
.nav-right button:hover{color:#c9d1d9}
main{padding:16px;max-width:1280px;margin:0 auto}
h1{font-size:16px;font-weight:700;color:#f0f6fc;margin-bottom:12px}
h2{font-size:13px;font-weight:600;color:#8b949e;text-transform:uppercase;letter-spacing:.06em;margin:16px 0 8px}
table{width:100%;border-collapse:collapse;font-size:12px;margin-bottom:16px}
th{text-align:left;padding:6px 10px;border-bottom:1px solid #30363d;color:#8b949e;font-weight:600;font-size:11px;text-transform:uppercase;letter-spacing:.05em}
td{padding:5px 10px;border-bottom:1px solid #21262d;vertical-align:top}
tr:hover td{background:#161b22}
.tag{display:inline-block;padding:1px 6px;border-radius:4px;font-size:11px;background:#21262d;color:#8b949e;border:1px solid #30363d}
.mono{font-family:monospace;font-size:11px;color:#79c0ff}
.dim{color:#8b949e}
.ok{color:#56d364}
.err{color:#f87171}
.flash{padding:8px 16px;font-size:12px;border-bottom:1px solid #30363d}
.flash.ok{background:#0f2417;color:#56d364}
.flash.err{background:#2d1214;color:#f87171}
form.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(280px,1fr));gap:8px;background:#161b22;border:1px solid #30363d;border-radius:6px;padding:12px;margin-bottom:16px}
form.grid .wide{grid-column:1/-1}
label{display:flex;flex-direction:column;gap:2px;font-size:11px;color:#8b949e}
label.check{flex-direction:row;align-items:center;gap:6px}
input,select,textarea{background:#0d1117;border:1px solid #30363d;color:#c9d1d9;border-radius:4px;padding:4px 6px;font-size:12px;font-family:inherit}
textarea{min-height:48px}
button{background:#1f6feb;border:none;color:#fff;padding:5px 14px;border-radius:4px;cursor:pointer;font-size:12px;font-family:inherit;align-self:end}
button.danger{background:#da3633}
.actions{display:flex;gap:12px;align-items:center;flex-wrap:wrap;margin-bottom:16px}
.schematic{background:#fff;border-radius:6px;padding:8px;overflow-x:auto;margin-bottom:12px}
.schematic svg{display:block;margin:0 auto}
.empty{padding:24px;text-align:center;color:#8b949e;background:#161b22;border:1px dashed #30363d;border-radius:6px;margin-bottom:16px}
</style>
</head>
<body>
<nav>
  <span class="brand">pacetrack</span>
  <a href="/campaign" {{if eq .Active "campaign"}}class="active"{{end}}>Campaign</a>
  <a href="/circuits" {{if eq .Active "circuits"}}class="active"{{end}}>Circuits</a>
  <a href="/arms" {{if eq .Active "arms"}}class="active"{{end}}>Arms</a>
  <a href="/lagoons" {{if eq .Active "lagoons"}}class="active"{{end}}>Lagoons</a>
  <a href="/segments" {{if eq .Active "segments"}}class="active"{{end}}>Segments</a>
  <a href="/analyses" {{if eq .Active "analyses"}}class="active"{{end}}>Analyses</a>
  <a href="/attachments" {{if eq .Active "attachments"}}class="active"{{end}}>Attachments</a>
  <a href="/ontologies" {{if eq .Active "ontologies"}}class="active"{{end}}>Ontologies</a>
  <a href="/schematic" {{if eq .Active "schematic"}}class="active"{{end}}>Schematic</a>
  <a href="/validate" {{if eq .Active "validate"}}class="active"{{end}}>Validate</a>
  <div class="nav-right">
    <form method="POST" action="/save"><button>Save</button></form>
    <a href="/api/export/campaign?format=json">JSON</a>
    <a href="/api/export/campaign?format=yaml">YAML</a>
  </div>
</nav>
{{if .Flash}}<div class="flash ok">{{.Flash}}</div>{{end}}
{{if .Error}}<div class="flash err">{{.Error}}</div>{{end}}
<main>
{{template "content" .}}
</main>
</body>
</html>
{{end}}
`

const tmplCampaign = `
{{define "content"}}
<h1>Campaign</h1>
<p class="dim">Created {{fmtDate .C.CreatedAt}} · {{.ArmCount}} arms · {{.IssueCount}} open issues</p>
<form method="POST" action="/campaign/save" class="grid">
  <label>Campaign ID <input name="campaign_id" value="{{.C.CampaignID}}"></label>
  <label>Title <input name="title" value="{{.C.Title}}"></label>
  <label>Created by <input name="created_by" value="{{.C.CreatedBy}}"></label>
  <label class="wide">Notes <textarea name="notes">{{.C.Notes}}</textarea></label>

  <h2 class="wide">Starting protein</h2>
  <label>Name <input name="protein_name" value="{{.C.StartingProtein.Name}}"></label>
  <label>Vector context <input name="vector_context" value="{{.C.StartingProtein.VectorContext}}"></label>
  <label>Features <input name="features" value="{{join .C.StartingProtein.Features ", "}}" placeholder="comma separated"></label>
  <label class="wide">DNA sequence <textarea name="dna_seq">{{.C.StartingProtein.DNASeq}}</textarea></label>
  <label class="wide">AA sequence <textarea name="aa_seq">{{.C.StartingProtein.AASeq}}</textarea></label>

  <h2 class="wide">Host system</h2>
  <label>Strain <input name="strain" value="{{.C.HostSystem.Strain}}"></label>
  <label>Genotype <input name="genotype" value="{{.C.HostSystem.Genotype}}"></label>
  <label>F&#39; status <input name="f_prime_status" value="{{.C.HostSystem.FPrimeStatus}}"></label>
  <label>Resistances <input name="resistances" value="{{join .C.HostSystem.Resistances ", "}}" placeholder="comma separated"></label>
  <label>Accessory plasmid (AP) <input name="plasmid_ap" value="{{.C.HostSystem.Plasmids.AP}}"></label>
  <label>Complementary plasmid (CP) <input name="plasmid_cp" value="{{.C.HostSystem.Plasmids.CP}}"></label>
  <label>Mutagenesis plasmid (MP) <input name="plasmid_mp" value="{{.C.HostSystem.Plasmids.MP}}"></label>
  <label>Drift plasmid (DP) <input name="plasmid_dp" value="{{.C.HostSystem.Plasmids.DP}}"></label>

  <button type="submit">Save campaign</button>
</form>

<h2>Document</h2>
<div class="actions">
  <form method="POST" action="/sample/load"><button>Load sample campaign</button></form>
  <form method="POST" action="/reset"><button class="danger">Reset document</button></form>
  <form method="POST" action="/api/import" enctype="multipart/form-data">
    <input type="file" name="document" accept=".json,.yaml,.yml">
    <button>Import</button>
  </form>
</div>
{{end}}
`

const tmplCircuits = `
{{define "content"}}
<h1>Selection circuits</h1>
<form method="POST" action="/circuits/add" class="grid">
  <label>Circuit ID <input name="id" placeholder="blank for a generated id"></label>
  <label>Type <select name="type">{{range .Types}}<option>{{.}}</option>{{end}}</select></label>
  <label>Reporter gene <select name="reporter_gene">{{range .Reporters}}<option>{{.}}</option>{{end}}</select></label>
  <label>Version <input name="version" value="1.0"></label>
  <label class="wide">AP details <input name="ap_details"></label>
  <label class="wide">CP details <input name="cp_details"></label>
  <label>Negative selection <input name="negative_selection"></label>
  <label>Stepping stones <input name="stepping_stones" placeholder="T7/T3, T3, final"></label>
  <button type="submit">Add circuit</button>
</form>

<table>
<tr><th>ID</th><th>Type</th><th>Reporter</th><th>Stepping stones</th><th>Negative selection</th><th>Version</th></tr>
{{range .Circuits}}
<tr>
  <td class="mono">{{.ID}}</td>
  <td>{{.Type}}</td>
  <td>{{.ReporterGene}}</td>
  <td>{{join .SteppingStones " › "}}</td>
  <td>{{.NegativeSelection}}</td>
  <td>{{.Version}}</td>
</tr>
{{else}}
<tr><td colspan="6" class="dim">No circuits yet.</td></tr>
{{end}}
</table>
{{end}}
`

const tmplArms = `
{{define "content"}}
<h1>Experimental arms</h1>
<form method="POST" action="/arms/add" class="grid">
  <label>Arm ID <input name="arm_id" placeholder="blank for a generated id"></label>
  <label>Label <input name="label"></label>
  <label class="wide">Description <input name="description"></label>
  <button type="submit">Add arm</button>
</form>

<h2>Add timepoint</h2>
<form method="POST" action="/arms/timepoints/add" class="grid">
  <label>Arm <select name="arm_id">{{range .Arms}}<option>{{.ArmID}}</option>{{end}}</select></label>
  <label>t (hours) <input name="t" type="number" min="0" value="0"></label>
  <label>Timestamp <input name="timestamp" placeholder="2025-08-15T12:00:00Z"></label>
  <label>Global events <input name="global_events" placeholder="comma separated"></label>
  <button type="submit">Add timepoint</button>
</form>

<table>
<tr><th>Arm</th><th>Label</th><th>Status</th><th>Timepoints</th><th>Description</th></tr>
{{range .Arms}}
<tr>
  <td class="mono">{{.ArmID}}</td>
  <td>{{.Label}}</td>
  <td><span class="tag">{{.Status}}</span></td>
  <td>{{len .Timepoints}}</td>
  <td>{{.Description}}</td>
</tr>
{{else}}
<tr><td colspan="5" class="dim">No arms yet.</td></tr>
{{end}}
</table>

<h2>Timepoints</h2>
<table>
<tr><th>Arm</th><th>t</th><th>Timestamp</th><th>Global events</th><th>Lagoons</th></tr>
{{range $arm := .Arms}}{{range $tp := $arm.Timepoints}}
<tr>
  <td class="mono">{{$arm.ArmID}}</td>
  <td>{{$tp.T}}</td>
  <td>{{fmtDateTime $tp.Timestamp}}</td>
  <td>{{join $tp.GlobalEvents ", "}}</td>
  <td>{{len $tp.Lagoons}}</td>
</tr>
{{end}}{{end}}
</table>
{{end}}
`

const tmplLagoons = `
{{define "content"}}
<h1>Lagoons</h1>
<form method="POST" action="/lagoons/add" class="grid">
  <label>Arm <select name="arm_id">{{range .Arms}}<option>{{.ArmID}}</option>{{end}}</select></label>
  <label>Timepoint t <input name="t" type="number" min="0" value="0"></label>
  <label>Lagoon ID <input name="lagoon_id" placeholder="blank for a generated id"></label>
  <label>Condition label <input name="condition_label"></label>
  <label class="check"><input type="checkbox" name="mutagenesis_on" value="true"> Mutagenesis on</label>
  <label>Mode <select name="mode">{{range .Modes}}<option>{{.}}</option>{{end}}</select></label>
  <label>Volume (mL) <input name="volume_ml" type="number" step="any" value="20"></label>
  <label>Temperature (C) <input name="temp_c" type="number" step="any" value="37"></label>
  <label>Media <input name="media" value="Davis rich media"></label>
  <label>Dilution rate (vol/hr) <input name="dilution_rate" type="number" step="any" placeholder="PACE only"></label>
  <label>Passage fraction <input name="passage_fraction" type="number" step="any" placeholder="PANCE only"></label>
  <label>Antibiotics <input name="antibiotics" placeholder="carbenicillin:50, tet:10 (ug/mL)"></label>
  <label>Inducers <input name="inducers" placeholder="arabinose:10 (mM)"></label>
  <label>Phage titer (pfu/mL) <input name="titer_value" type="number" step="any"></label>
  <label>Titer method <select name="titer_method">{{range .Methods}}<option>{{.}}</option>{{end}}</select></label>
  <button type="submit">Add lagoon</button>
</form>

<h2>Add sample</h2>
<form method="POST" action="/lagoons/samples/add" class="grid">
  <label>Arm <select name="arm_id">{{range .Arms}}<option>{{.ArmID}}</option>{{end}}</select></label>
  <label>Timepoint t <input name="t" type="number" min="0" value="0"></label>
  <label>Lagoon ID <input name="lagoon_id"></label>
  <label>Sample ID <input name="sample_id" placeholder="blank for a generated id"></label>
  <label>Sample type <select name="sample_type">{{range .SampleTypes}}<option>{{.}}</option>{{end}}</select></label>
  <button type="submit">Add sample</button>
</form>

<h2>Add library prep</h2>
<form method="POST" action="/lagoons/libraries/add" class="grid">
  <label>Arm <select name="arm_id">{{range .Arms}}<option>{{.ArmID}}</option>{{end}}</select></label>
  <label>Timepoint t <input name="t" type="number" min="0" value="0"></label>
  <label>Lagoon ID <input name="lagoon_id"></label>
  <label>Sample ID <input name="sample_id"></label>
  <label>Library ID <input name="library_id" placeholder="blank for a generated id"></label>
  <label>Protocol <input name="protocol"></label>
  <label>Amplicon targets <input name="amplicon_targets" placeholder="evolved CDS"></label>
  <button type="submit">Add library</button>
</form>

<h2>Add sequencing run</h2>
<form method="POST" action="/lagoons/runs/add" enctype="multipart/form-data" class="grid">
  <label>Arm <select name="arm_id">{{range .Arms}}<option>{{.ArmID}}</option>{{end}}</select></label>
  <label>Timepoint t <input name="t" type="number" min="0" value="0"></label>
  <label>Lagoon ID <input name="lagoon_id"></label>
  <label>Sample ID <input name="sample_id"></label>
  <label>Library ID <input name="library_id"></label>
  <label>Run ID <input name="run_id" placeholder="blank for a generated id"></label>
  <label>Platform <input name="platform" value="Illumina MiSeq"></label>
  <label class="wide">FASTQ files <input type="file" name="fastq" multiple></label>
  <button type="submit">Add run</button>
</form>

<table>
<tr><th>Arm</th><th>t</th><th>Lagoon</th><th>Label</th><th>Mode</th><th>Mutagenesis</th><th>Titer</th><th>Samples</th></tr>
{{range .Rows}}
<tr>
  <td class="mono">{{.ArmID}}</td>
  <td>{{.T}}</td>
  <td class="mono">{{.Lagoon.LagoonID}}</td>
  <td>{{.Lagoon.ConditionLabel}}</td>
  <td><span class="tag">{{.Lagoon.Conditions.Mode}}</span></td>
  <td>{{onOff .Lagoon.MutagenesisOn}}</td>
  <td>{{with .Lagoon.Measurements.PhageTiter}}{{if .Method}}{{printf "%.2e" .Value}} ({{.Method}}){{end}}{{end}}</td>
  <td>{{len .Lagoon.Samples}}</td>
</tr>
{{else}}
<tr><td colspan="8" class="dim">No lagoons yet.</td></tr>
{{end}}
</table>
{{end}}
`

const tmplSegments = `
{{define "content"}}
<h1>Selection segments</h1>
<form method="POST" action="/segments/add" class="grid">
  <label>Segment ID <input name="segment_id" placeholder="blank for a generated id"></label>
  <label>Mode <select name="mode">{{range .Modes}}<option>{{.}}</option>{{end}}</select></label>
  <label>Applied to arms <select name="applied_to_arms" multiple size="3">{{range .ArmIDs}}<option>{{.}}</option>{{end}}</select></label>
  <label>Selection circuit <select name="selection_circuit_id">{{range .CircuitIDs}}<option>{{.}}</option>{{end}}</select></label>
  <label>Start time <input name="start_time" placeholder="2025-08-15T12:00:00Z or 0"></label>
  <label>End time <input name="end_time" placeholder="blank for start+72h"></label>
  <label>Stepping stones <input name="stepping_stones" placeholder="T7/T3, T3"></label>
  <button type="submit">Add segment</button>
</form>

<table>
<tr><th>ID</th><th>Mode</th><th>Arms</th><th>Start</th><th>End</th><th>Circuit</th><th>Stepping stones</th></tr>
{{range .Segments}}
<tr>
  <td class="mono">{{.SegmentID}}</td>
  <td><span class="tag">{{.Mode}}</span></td>
  <td>{{join .AppliedToArms ", "}}</td>
  <td class="mono">{{.StartTime}}</td>
  <td class="mono">{{deref .EndTime}}</td>
  <td class="mono">{{.SelectionDesign.SelectionCircuitID}}</td>
  <td>{{join .SelectionDesign.SteppingStones " › "}}</td>
</tr>
{{else}}
<tr><td colspan="7" class="dim">No segments yet.</td></tr>
{{end}}
</table>
{{end}}
`

const tmplAnalyses = `
{{define "content"}}
<h1>Analyses</h1>
<form method="POST" action="/analyses/add" enctype="multipart/form-data" class="grid">
  <label>Analysis ID <input name="analysis_id" placeholder="blank for a generated id"></label>
  <label>Pipeline <input name="pipeline_id" placeholder="variant-calling-v2"></label>
  <label>Reference sequence <input name="ref_seq_id"></label>
  <label>Environment <input name="env" placeholder="docker://pipeline:2.1"></label>
  <label>Inputs <input name="inputs" placeholder="comma separated sample or run ids"></label>
  <label>Code hash <input name="code_hash" placeholder="git commit or image digest"></label>
  <label>Performed by <input name="who"></label>
  <label class="wide">Params <textarea name="params" placeholder="one key=value per line"></textarea></label>
  <label class="wide">Notes <textarea name="notes"></textarea></label>
  <label>Alignments <input type="file" name="alignments" multiple></label>
  <label>Variant tables <input type="file" name="variant_tables" multiple></label>
  <label>Consensus sequences <input type="file" name="consensus_sequences" multiple></label>
  <label>Selection scores <input type="file" name="selection_scores" multiple></label>
  <button type="submit">Add analysis</button>
</form>

<table>
<tr><th>ID</th><th>Pipeline</th><th>Ref seq</th><th>Inputs</th><th>Outputs</th><th>Params</th><th>Provenance</th></tr>
{{range .Analyses}}
<tr>
  <td class="mono">{{.AnalysisID}}</td>
  <td>{{.PipelineID}}</td>
  <td class="mono">{{.RefSeqID}}</td>
  <td>{{join .Inputs ", "}}</td>
  <td>{{outputCount .Outputs}}</td>
  <td>{{range $k, $v := .Params}}<span class="tag">{{$k}}={{$v}}</span> {{end}}</td>
  <td class="dim">{{.Provenance.Who}} {{fmtDateTime .Provenance.When}}</td>
</tr>
{{else}}
<tr><td colspan="7" class="dim">No analyses yet.</td></tr>
{{end}}
</table>
{{end}}
`

const tmplAttachments = `
{{define "content"}}
<h1>Attachments</h1>
<form method="POST" action="/attachments/add" enctype="multipart/form-data" class="grid">
  <label>Files <input type="file" name="file" multiple></label>
  <label class="wide">Description <input name="description"></label>
  <button type="submit">Add attachments</button>
</form>

<table>
<tr><th>File</th><th>Size</th><th>SHA-256</th><th>Description</th></tr>
{{range .Attachments}}
<tr>
  <td class="mono">{{basename .URI}}</td>
  <td>{{fmtBytes .SizeBytes}}</td>
  <td class="mono">{{truncate .SHA256 16}}</td>
  <td>{{.Description}}</td>
</tr>
{{else}}
<tr><td colspan="4" class="dim">No attachments yet.</td></tr>
{{end}}
</table>
{{end}}
`

const tmplOntologies = `
{{define "content"}}
<h1>Ontologies</h1>
<form method="POST" action="/ontologies/set" class="grid">
  <label>Key <input name="key" placeholder="selection_pressure"></label>
  <label class="wide">Terms <textarea name="terms" placeholder="one term per line"></textarea></label>
  <button type="submit">Set terms</button>
</form>

<table>
<tr><th>Key</th><th>Terms</th></tr>
{{range .Rows}}
<tr><td class="mono">{{.Key}}</td><td>{{join .Terms ", "}}</td></tr>
{{else}}
<tr><td colspan="2" class="dim">No ontology terms yet.</td></tr>
{{end}}
</table>
{{end}}
`

const tmplSchematic = `
{{define "content"}}
<h1>Schematic</h1>
{{if .HasScene}}
<div class="schematic">{{.SVG}}</div>
{{else}}
<p class="empty">Nothing to draw yet: add at least one arm and one segment.</p>
{{end}}
<p class="dim">{{.ArmCount}} arms · {{.SegmentCount}} segments · {{.CircuitCount}} circuits ·
  spans {{fmtHours .MaxHours}} ·
  <a href="/api/schematic.svg">SVG</a> · <a href="/api/schematic.json">JSON</a></p>
{{if .Fallbacks}}
<h2>Fallbacks</h2>
<table>
<tr><th>Segment</th><th>Field</th><th>Reason</th></tr>
{{range .Fallbacks}}
<tr><td class="mono">{{.SegmentID}}</td><td>{{.Field}}</td><td><span class="tag">{{.Reason}}</span></td></tr>
{{end}}
</table>
{{end}}
{{end}}
`

const tmplValidate = `
{{define "content"}}
<h1>Validation</h1>
{{if .Issues}}
<table>
<tr><th>Path</th><th>Problem</th></tr>
{{range .Issues}}
<tr><td class="mono">{{.Path}}</td><td>{{.Message}}</td></tr>
{{end}}
</table>
{{else}}
<p class="ok">Valid ✓ No issues found.</p>
{{end}}
{{end}}
`
