package audit

// Record — плоское представление отслеживаемой записи: имя поля -> значение
// в строковом виде (как пришло из формы / как лежит в БД).
type Record map[string]string

type Kind string

const (
	KindPlain Kind = "plain"
	KindDate  Kind = "date"
)

// Ref — по какому справочнику разворачивать id в имя при показе истории
type Ref string

const (
	RefNone       Ref = ""
	RefSite       Ref = "site"
	RefCenter     Ref = "center"
	RefJobRole    Ref = "job_role"
	RefDepartment Ref = "department"
	RefTerritory  Ref = "territory"
)

// FieldDescriptor — статическое описание одного отслеживаемого поля:
// как его сравнивать и как показывать. Единый источник и для диффа,
// и для отчёта по истории.
type FieldDescriptor struct {
	Name  string
	Label string
	Kind  Kind
	Ref   Ref

	// Relevant говорит, применимо ли поле к состоянию записи.
	// Дифф пропускает поле, только если оно неприменимо и к старой,
	// и к новой записи (иначе потерялись бы переходы между
	// взаимоисключающими полями); writer проверяет саму запись.
	Relevant func(rec Record) bool
}

const EntityWorker = "worker"

// WorkerFields — объявленный набор отслеживаемых полей сотрудника.
// Поля вне этого набора в журнал не попадают, даже если пришли в запросе.
var WorkerFields = []FieldDescriptor{
	{Name: "last_name", Label: "Фамилия", Kind: KindPlain},
	{Name: "first_name", Label: "Имя", Kind: KindPlain},
	{Name: "phone", Label: "Телефон", Kind: KindPlain},
	{Name: "email", Label: "Email", Kind: KindPlain},
	{Name: "start_date", Label: "Дата приёма", Kind: KindDate},
	{Name: "end_date", Label: "Дата увольнения", Kind: KindDate},
	{Name: "job_role_id", Label: "Должность", Kind: KindPlain, Ref: RefJobRole},
	{Name: "department_id", Label: "Отдел", Kind: KindPlain, Ref: RefDepartment},
	{Name: "territory_id", Label: "Территория", Kind: KindPlain, Ref: RefTerritory},

	// сотрудник закреплён либо за объектом, либо за центром;
	// "чужое" поле пропускаем, иначе каждый апдейт выглядел бы как очистка
	{
		Name: "site_id", Label: "Объект", Kind: KindPlain, Ref: RefSite,
		Relevant: func(rec Record) bool { return rec["center_id"] == "" },
	},
	{
		Name: "center_id", Label: "Центр", Kind: KindPlain, Ref: RefCenter,
		Relevant: func(rec Record) bool { return rec["site_id"] == "" },
	},

	{Name: "notes", Label: "Комментарий", Kind: KindPlain},
}

// DescriptorFor возвращает описание поля по имени (ok=false для неизвестных).
func DescriptorFor(fields []FieldDescriptor, name string) (FieldDescriptor, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}
